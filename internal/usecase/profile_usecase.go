package usecase

import (
	"context"

	"storm/internal/domain/entity"
)

// ProfileUsecase reads the account behind a verified token.
type ProfileUsecase interface {
	// GetProfile returns the account whose email is subject.
	// Errors: ErrAccountNotFound, ErrInternalError.
	GetProfile(ctx context.Context, subject string) (*entity.User, error)
}
