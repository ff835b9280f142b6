/**
 * @description
 * This file defines the interfaces for the data access layer (repositories).
 * Defining interfaces allows for dependency injection and easy mocking in
 * tests, promoting a loosely coupled architecture.
 *
 * @notes
 * - Any component that needs to interact with the database should depend on
 *   these interfaces, not on the concrete PostgreSQL implementation.
 * - Every account operation takes the owning user's ID; the implementations
 *   scope each query by it so one customer can never reach another's rows.
 */
package store

import (
	"context"

	"github.com/oriemcapital/banking-service/internal/domain"
)

// AccountRepository defines the contract for database operations on accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, userID string) ([]domain.Account, error)
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// UserRepository defines the contract for database operations on users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
