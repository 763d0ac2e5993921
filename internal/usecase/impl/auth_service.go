// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "storm/internal/delivery/context"
	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	"storm/internal/domain/service"
	"storm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	eventPublishTimeout = 3 * time.Second

	// Hashed once and compared against when the email is unknown, so a miss
	// costs about as much as a wrong password.
	timingEqualizerPassword = "storm-timing-equalizer"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	logger         *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, then issues a token whose subject is the email.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	logger := srv.log(ctx).With(slog.String("email", input.Email), slog.String("username", input.Username))

	existing, err := srv.userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	switch {
	case err == nil && existing != nil:
		logger.Warn("Registration rejected: identity already taken", slog.Uint64("existing_user_id", existing.ID))

		return nil, errors.Wrap(domainerrors.ErrDuplicateIdentity, "registration lookup")
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		logger.Error("Registration lookup failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "registration lookup")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "hash password")
	}

	newUser := entity.NewUser(input.Email, input.Username, hashedPassword)
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// The store's unique constraint catches registrations that raced past the lookup.
		if errors.Is(err, domainerrors.ErrDuplicateIdentity) {
			logger.Warn("Registration rejected: identity taken concurrently")

			return nil, err
		}
		logger.Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "create user")
	}

	accessToken, err := srv.tokenService.GenerateToken(newUser.Email)
	if err != nil {
		logger.Error("Failed to issue token after registration", slog.Uint64("user_id", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "issue token")
	}

	srv.publishRegistered(ctx, newUser)

	logger.Info("User registered", slog.Uint64("user_id", newUser.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
		User:        newUser,
	}, nil
}

// Login verifies the credentials. Unknown email and wrong password return the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	logger := srv.log(ctx).With(slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.equalizeTiming(input.Password)
			logger.Warn("Login failed: user not found")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}
		logger.Error("Login lookup failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "login lookup")
	}

	if err := srv.hasher.Verify(input.Password, user.PasswordHash); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentialFormat) {
			logger.Error("Login failed: stored password hash is malformed", slog.Uint64("user_id", user.ID), slog.Any("error", err))
		} else {
			logger.Warn("Login failed: password mismatch", slog.Uint64("user_id", user.ID))
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "verify password")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.Email)
	if err != nil {
		logger.Error("Failed to issue token after login", slog.Uint64("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "issue token")
	}

	logger.Info("User logged in", slog.Uint64("user_id", user.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
		User:        user,
	}, nil
}

// publishRegistered emits the account.registered event. Failures are logged only.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.eventPublisher == nil {
		return
	}

	event := &entity.AccountEvent{
		Type:             entity.AccountEventRegistered,
		RequestID:        deliverycontext.RequestID(ctx),
		UserID:           user.ID,
		Email:            user.Email,
		Username:         user.Username,
		SubscriptionTier: user.SubscriptionTier,
		OccurredAt:       user.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := srv.eventPublisher.PublishAccountEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", event.Type),
			slog.Uint64("user_id", user.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *authService) equalizeTiming(password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingEqualizerPassword)
		if err == nil {
			srv.dummyHash = hash
		}
	})

	if srv.dummyHash != "" {
		_ = srv.hasher.Verify(password, srv.dummyHash)
	}
}
