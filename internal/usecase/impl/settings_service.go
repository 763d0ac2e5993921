package impl

import (
	"context"
	"log/slog"

	deliverycontext "storm/internal/delivery/context"
	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	"storm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.UserSettingsRepository
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SettingsRepo repository.UserSettingsRepository
	Logger       *slog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		userRepo:     params.UserRepo,
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (srv *settingsService) GetSettings(ctx context.Context, subject string) (*entity.UserSettings, error) {
	user, err := srv.resolveAccount(ctx, subject)
	if err != nil {
		return nil, err
	}

	return srv.currentSettings(ctx, user)
}

func (srv *settingsService) UpdateSettings(ctx context.Context, subject string, patch entity.UserSettingsPatch) (*entity.UserSettings, error) {
	user, err := srv.resolveAccount(ctx, subject)
	if err != nil {
		return nil, err
	}

	settings, err := srv.currentSettings(ctx, user)
	if err != nil {
		return nil, err
	}
	settings.Apply(patch)

	if err := srv.settingsRepo.Upsert(ctx, settings); err != nil {
		deliverycontext.LoggerOrDefault(ctx, srv.logger).Error("Failed to save settings",
			slog.Uint64("user_id", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrInternalError, "save settings")
	}

	return settings, nil
}

func (srv *settingsService) resolveAccount(ctx context.Context, subject string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		logger := deliverycontext.LoggerOrDefault(ctx, srv.logger)
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("Settings requested for missing account", slog.String("subject", subject))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "resolve account")
		}
		logger.Error("Failed to load account for settings", slog.String("subject", subject), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "resolve account")
	}

	return user, nil
}

// currentSettings falls back to the defaults when the account never saved any.
func (srv *settingsService) currentSettings(ctx context.Context, user *entity.User) (*entity.UserSettings, error) {
	settings, err := srv.settingsRepo.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		return settings, nil
	case errors.Is(err, repository.ErrSettingsNotFound):
		return entity.DefaultUserSettings(user.ID), nil
	default:
		deliverycontext.LoggerOrDefault(ctx, srv.logger).Error("Failed to load settings",
			slog.Uint64("user_id", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrInternalError, "load settings")
	}
}
