/**
 * @description
 * This file defines the domain model for a User. A user is the authenticated
 * owner of zero or more accounts; all account access is scoped to this
 * identity.
 */
package domain

import "time"

// User represents a registered customer of the bank.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
