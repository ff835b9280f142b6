/**
 * @description
 * Pure validation rules for account inputs. These run before any store
 * interaction, so a validation failure never leaves partial state behind.
 *
 * @notes
 * - The minimum-deposit table is static configuration keyed by account type;
 *   adding a new account type is a one-line change here.
 * - The status transition table currently permits every transition, matching
 *   the behavior customers rely on today. Tightening it (e.g. making `closed`
 *   terminal) only requires editing the table.
 */
package app

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oriemcapital/banking-service/internal/domain"
)

// minimumDeposits is the smallest initial balance permitted per account type.
var minimumDeposits = map[domain.AccountType]decimal.Decimal{
	domain.CheckingAccount: decimal.RequireFromString("25.00"),
	domain.SavingsAccount:  decimal.RequireFromString("100.00"),
}

// allowedStatusTransitions is the explicit lifecycle graph for account status.
var allowedStatusTransitions = map[domain.AccountStatus][]domain.AccountStatus{
	domain.AccountStatusActive: {domain.AccountStatusActive, domain.AccountStatusFrozen, domain.AccountStatusClosed},
	domain.AccountStatusFrozen: {domain.AccountStatusActive, domain.AccountStatusFrozen, domain.AccountStatusClosed},
	domain.AccountStatusClosed: {domain.AccountStatusActive, domain.AccountStatusFrozen, domain.AccountStatusClosed},
}

// normalizeAccountType lower-cases the input and checks it against the closed
// set of supported account types. The stored value is always canonical.
func normalizeAccountType(raw string) (domain.AccountType, error) {
	accountType := domain.AccountType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := minimumDeposits[accountType]; !ok {
		return "", fmt.Errorf("%w: account type must be 'checking' or 'savings'", domain.ErrInvalidInput)
	}
	return accountType, nil
}

// validateInitialDeposit enforces a strictly positive deposit that meets the
// minimum for the account type. A deposit equal to the minimum passes.
func validateInitialDeposit(accountType domain.AccountType, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: initial deposit must be greater than zero", domain.ErrInvalidInput)
	}
	minimum := minimumDeposits[accountType]
	if amount.LessThan(minimum) {
		return fmt.Errorf("%w: minimum deposit for a %s account is %s", domain.ErrInvalidInput, accountType, minimum.StringFixed(2))
	}
	return nil
}

// normalizeAccountStatus lower-cases the input and checks membership of the
// closed status set.
func normalizeAccountStatus(raw string) (domain.AccountStatus, error) {
	status := domain.AccountStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := allowedStatusTransitions[status]; !ok {
		return "", fmt.Errorf("%w: status must be 'active', 'frozen' or 'closed'", domain.ErrInvalidInput)
	}
	return status, nil
}

// validateStatusTransition checks the requested move against the transition
// table.
func validateStatusTransition(from, to domain.AccountStatus) error {
	for _, allowed := range allowedStatusTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: account status cannot move from %s to %s", domain.ErrInvalidInput, from, to)
}
