/**
 * @description
 * This file defines the error kinds shared across the service. The API layer
 * maps them to HTTP statuses with errors.Is, so services and repositories wrap
 * them rather than returning transport codes.
 *
 * @notes
 * - A request for an account that exists but belongs to another user reports
 *   ErrAccountNotFound, never a permission error. Cross-owner access must be
 *   indistinguishable from absence.
 */
package domain

import "errors"

var (
	// ErrInvalidInput marks caller input that fails a validation rule.
	// Specific validation failures wrap it with fmt.Errorf("...: %w", ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccountNotFound covers both a missing account and an account owned
	// by a different user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when the store rejects an insert due to
	// an integrity constraint.
	ErrDuplicateAccount = errors.New("account could not be created")

	// ErrVersionConflict is returned when a concurrent update won the race for
	// the same account row.
	ErrVersionConflict = errors.New("account was modified concurrently")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")

	// ErrInvalidCredentials is returned on a failed login, without revealing
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
