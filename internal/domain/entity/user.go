// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// DefaultSubscriptionTier is assigned to every newly registered account.
const DefaultSubscriptionTier = "free"

// User is an account that can authenticate against the API.
// Email and Username are each unique across all users.
type User struct {
	ID               uint64    // Numeric identifier assigned by the store.
	Email            string    // Login identifier and token subject. Compared exactly.
	Username         string    // Public handle.
	PasswordHash     string    // Opaque bcrypt hash, never the plaintext.
	IsActive         bool      // Accounts are active on creation.
	SubscriptionTier string    // Name of the pricing tier the account is on.
	CreatedAt        time.Time // UTC, set once at creation.
}

// NewUser builds an active free-tier account stamped with the current UTC time.
func NewUser(email, username, passwordHash string) *User {
	return &User{
		Email:            email,
		Username:         username,
		PasswordHash:     passwordHash,
		IsActive:         true,
		SubscriptionTier: DefaultSubscriptionTier,
		CreatedAt:        time.Now().UTC(),
	}
}
