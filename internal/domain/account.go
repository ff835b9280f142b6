/**
 * @description
 * This file defines the core domain model for an Account within the ORiem
 * Capital system. It represents the structure of an account as stored in our
 * own database.
 *
 * @notes
 * - Balances are fixed-point decimals with a scale of 2. They never pass
 *   through a binary float, in code or at the SQL boundary.
 * - `UserID` links the account back to its owner in the `users` table; every
 *   read and write against the store is scoped by it.
 */
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the type of a bank account.
type AccountType string

const (
	CheckingAccount AccountType = "checking"
	SavingsAccount  AccountType = "savings"
)

// AccountStatus defines the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusFrozen AccountStatus = "frozen"
	AccountStatusClosed AccountStatus = "closed"
)

// Account represents a customer's bank account in our system.
type Account struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      AccountType     `json:"account_type"`
	Balance   decimal.Decimal `json:"balance"`
	Status    AccountStatus   `json:"status"`
	Nickname  *string         `json:"nickname"`
	Version   int64           `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
