// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storm/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the identity directory operations.
// Uniqueness of email and username is owned by the store.
type UserRepository interface {
	// FindByEmailOrUsername returns any user whose email or username matches.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID.
	// A uniqueness violation returns ErrDuplicateIdentity from the domain errors package.
	Create(ctx context.Context, user *entity.User) error
}
