package usecase

import (
	"context"

	"storm/internal/domain/entity"
)

// SettingsUsecase reads and updates the preferences of the account behind a verified token.
type SettingsUsecase interface {
	// GetSettings returns the stored settings, or the defaults if none were saved.
	// Errors: ErrAccountNotFound, ErrInternalError.
	GetSettings(ctx context.Context, subject string) (*entity.UserSettings, error)

	// UpdateSettings merges patch onto the current settings and stores the result.
	// The first update creates the row from the defaults.
	// Errors: ErrAccountNotFound, ErrInternalError.
	UpdateSettings(ctx context.Context, subject string, patch entity.UserSettingsPatch) (*entity.UserSettings, error)
}
