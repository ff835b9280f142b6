/**
 * @description
 * This file contains the core business logic for account lifecycle management,
 * implemented as an `AccountService`. It orchestrates validation, the database
 * repository, and lifecycle event publishing.
 *
 * @notes
 * - This service layer keeps the API handlers (controllers) thin and focused
 *   on HTTP concerns, while the business logic remains independent.
 * - Validation always runs before the repository is touched, so invalid input
 *   never reaches the database.
 * - Event publishing is best-effort: a publish failure is logged and never
 *   fails the customer's request.
 */
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oriemcapital/banking-service/internal/domain"
	"github.com/oriemcapital/banking-service/internal/store"
	"github.com/oriemcapital/banking-service/pkg/rabbitmq"
)

const accountEventsExchange = "account_events"

// AccountService provides methods for managing the account lifecycle.
type AccountService struct {
	accounts store.AccountRepository
	events   rabbitmq.Publisher
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(accounts store.AccountRepository, events rabbitmq.Publisher) *AccountService {
	return &AccountService{
		accounts: accounts,
		events:   events,
	}
}

// OpenAccountInput defines the required input for opening a new account.
type OpenAccountInput struct {
	Type           string
	Nickname       *string
	InitialDeposit decimal.Decimal
}

// UpdateAccountInput carries the optional mutable fields of an account. A nil
// field means "leave unchanged"; a non-nil empty nickname overwrites.
type UpdateAccountInput struct {
	Nickname *string
	Status   *string
}

// OpenAccount validates the request and creates a new account for the owner.
// The new account always starts active with its balance set to the initial
// deposit.
func (s *AccountService) OpenAccount(ctx context.Context, ownerID string, input OpenAccountInput) (*domain.Account, error) {
	accountType, err := normalizeAccountType(input.Type)
	if err != nil {
		return nil, err
	}
	if err := validateInitialDeposit(accountType, input.InitialDeposit); err != nil {
		return nil, err
	}

	account := &domain.Account{
		UserID:   ownerID,
		Type:     accountType,
		Balance:  input.InitialDeposit.Round(2),
		Status:   domain.AccountStatusActive,
		Nickname: input.Nickname,
	}

	created, err := s.accounts.CreateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.publishEvent(ctx, domain.AccountOpenedEvent, created)
	return created, nil
}

// ListAccounts returns all non-closed accounts for the owner. An owner with no
// accounts gets an empty slice, not an error.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	return s.accounts.ListAccountsByOwner(ctx, ownerID)
}

// GetAccount fetches a single account scoped by its owner.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	return s.accounts.FindAccountByID(ctx, ownerID, accountID)
}

// UpdateAccount applies nickname and/or status changes to an account. A call
// with both fields nil is a legal no-op that returns the unchanged account.
func (s *AccountService) UpdateAccount(ctx context.Context, ownerID, accountID string, input UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accounts.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	if input.Nickname == nil && input.Status == nil {
		return account, nil
	}

	if input.Nickname != nil {
		nickname := *input.Nickname
		account.Nickname = &nickname
	}

	if input.Status != nil {
		status, err := normalizeAccountStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		if err := validateStatusTransition(account.Status, status); err != nil {
			return nil, err
		}
		account.Status = status
	}

	return s.accounts.SaveAccount(ctx, account)
}

// CloseAccount soft-deletes an account by moving it to the closed status. The
// record is never physically removed. Closing an already-closed account is a
// silent success.
func (s *AccountService) CloseAccount(ctx context.Context, ownerID, accountID string) error {
	account, err := s.accounts.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return err
	}

	if account.Status == domain.AccountStatusClosed {
		return nil
	}

	account.Status = domain.AccountStatusClosed
	closed, err := s.accounts.SaveAccount(ctx, account)
	if err != nil {
		return err
	}

	s.publishEvent(ctx, domain.AccountClosedEvent, closed)
	return nil
}

func (s *AccountService) publishEvent(ctx context.Context, routingKey string, account *domain.Account) {
	if s.events == nil {
		return
	}
	event := domain.AccountEvent{
		AccountID:   account.ID,
		UserID:      account.UserID,
		AccountType: string(account.Type),
		Status:      string(account.Status),
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, accountEventsExchange, routingKey, event); err != nil {
		log.Printf("Failed to publish %s event for account %s: %v", routingKey, account.ID, err)
	}
}
