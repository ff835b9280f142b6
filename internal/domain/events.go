/**
 * @description
 * This file defines the payloads for account lifecycle events published to
 * RabbitMQ. Downstream consumers (notifications, audit) subscribe to the
 * `account_events` exchange.
 */
package domain

import "time"

// Event routing keys on the account_events exchange.
const (
	AccountOpenedEvent = "account.opened"
	AccountClosedEvent = "account.closed"
)

// AccountEvent is the payload published when an account is opened or closed.
type AccountEvent struct {
	AccountID   string    `json:"account_id"`
	UserID      string    `json:"user_id"`
	AccountType string    `json:"account_type"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
