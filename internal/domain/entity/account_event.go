package entity

import "time"

// AccountEventRegistered is emitted once per successful registration.
const AccountEventRegistered = "account.registered"

// AccountEvent is a notification about an account lifecycle change.
type AccountEvent struct {
	Type             string    `json:"type"`
	RequestID        string    `json:"request_id,omitempty"`
	UserID           uint64    `json:"user_id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	SubscriptionTier string    `json:"subscription_tier"`
	OccurredAt       time.Time `json:"occurred_at"`
}
