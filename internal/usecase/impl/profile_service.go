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

type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) GetProfile(ctx context.Context, subject string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		logger := deliverycontext.LoggerOrDefault(ctx, srv.logger)
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("Profile requested for missing account", slog.String("subject", subject))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "get profile")
		}
		logger.Error("Failed to load profile", slog.String("subject", subject), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "get profile")
	}

	return user, nil
}
