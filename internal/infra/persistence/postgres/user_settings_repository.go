package postgres

import (
	"context"

	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	"storm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userSettingsRepository struct {
	db *gorm.DB
}

// NewUserSettingsRepository is the constructor for userSettingsRepository.
func NewUserSettingsRepository(db *gorm.DB) repository.UserSettingsRepository {
	return &userSettingsRepository{
		db: db,
	}
}

func (repo *userSettingsRepository) FindByUserID(ctx context.Context, userID uint64) (*entity.UserSettings, error) {
	var settingsM model.UserSettingsModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return toUserSettingsDomain(&settingsM), nil
}

// Upsert writes settings keyed by user id. created_at survives later writes.
func (repo *userSettingsRepository) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	settingsM := fromUserSettingsDomain(settings)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"theme",
				"notifications_enabled",
				"email_notifications",
				"budget_alert_threshold",
				"default_provider",
				"default_region",
				"updated_at",
			}),
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user settings")
	}

	stored, err := repo.FindByUserID(ctx, settings.UserID)
	if err != nil {
		return errors.Wrap(err, "reload user settings")
	}
	settings.CreatedAt = stored.CreatedAt
	settings.UpdatedAt = stored.UpdatedAt

	return nil
}

func toUserSettingsDomain(data *model.UserSettingsModel) *entity.UserSettings {
	return &entity.UserSettings{
		UserID:               data.UserID,
		Theme:                data.Theme,
		NotificationsEnabled: data.NotificationsEnabled,
		EmailNotifications:   data.EmailNotifications,
		BudgetAlertThreshold: data.BudgetAlertThreshold,
		DefaultProvider:      data.DefaultProvider,
		DefaultRegion:        data.DefaultRegion,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromUserSettingsDomain(data *entity.UserSettings) *model.UserSettingsModel {
	return &model.UserSettingsModel{
		UserID:               data.UserID,
		Theme:                data.Theme,
		NotificationsEnabled: data.NotificationsEnabled,
		EmailNotifications:   data.EmailNotifications,
		BudgetAlertThreshold: data.BudgetAlertThreshold,
		DefaultProvider:      data.DefaultProvider,
		DefaultRegion:        data.DefaultRegion,
	}
}
