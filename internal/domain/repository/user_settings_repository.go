package repository

import (
	"context"
	"errors"

	"storm/internal/domain/entity"
)

// ErrSettingsNotFound is returned when an account has never saved settings.
var ErrSettingsNotFound = errors.New("user settings not found")

// UserSettingsRepository stores at most one settings row per account.
type UserSettingsRepository interface {
	FindByUserID(ctx context.Context, userID uint64) (*entity.UserSettings, error)

	// Upsert creates the row on first write and overwrites it afterwards.
	// Timestamps on settings are refreshed from the stored row.
	Upsert(ctx context.Context, settings *entity.UserSettings) error
}
