// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storm/internal/domain/entity"
)

// TokenTypeBearer is the token_type returned with every access token.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the access token issued by register and login.
type AuthOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account and returns a token for it.
	// Errors: ErrDuplicateIdentity, ErrInternalError.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks the credentials and returns a fresh token.
	// Errors: ErrInvalidCredentials for unknown email and wrong password alike, ErrInternalError.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
