package impl

import (
	"context"
	"testing"
	"time"

	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	mockRepo "storm/internal/mocks/repository"
	mockSvc "storm/internal/mocks/service"
	"storm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	userRepo       *mockRepo.MockUserRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:       userRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		eventPublisher: eventPublisher,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, _ := newCapturingContext()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "a@x.com" &&
				user.Username == "alice" &&
				user.PasswordHash == "hashed-pw1" &&
				user.IsActive &&
				user.SubscriptionTier == entity.DefaultSubscriptionTier
		})).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken("a@x.com").Return("token-a", nil)
	fx.eventPublisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(event *entity.AccountEvent) bool {
			return event.Type == entity.AccountEventRegistered &&
				event.UserID == 42 &&
				event.Email == "a@x.com" &&
				event.RequestID == "req-test"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-a", output.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, output.TokenType)
	assert.Equal(t, uint64(42), output.User.ID)
	assert.NotEqual(t, "pw1", output.User.PasswordHash)
}

func TestAuthService_Register_DuplicateIdentity(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, logs := newCapturingContext()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice2", Password: "pw1"}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, "a@x.com", "alice2").
		Return(&entity.User{ID: 1, Email: "a@x.com", Username: "alice"}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
	assert.Contains(t, logs.String(), "identity already taken")
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.ErrDuplicateIdentity.WrapMessage("email or username already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().
		FindByEmailOrUsername(ctx, "a@x.com", "alice").
		Return(nil, errors.New("connection reset by peer"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestAuthService_Register_CreateFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create user"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestAuthService_Register_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateToken("a@x.com").Return("", errors.New("signing failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestAuthService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, logs := newCapturingContext()
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateToken("a@x.com").Return("token-a", nil)
	fx.eventPublisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-a", output.AccessToken)
	assert.Contains(t, logs.String(), "Failed to publish account event")
}

func TestAuthService_Register_PublishUsesBoundedContext(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())
	input := &usecase.RegisterInput{Email: "a@x.com", Username: "alice", Password: "pw1"}

	fx.userRepo.EXPECT().FindByEmailOrUsername(ctx, "a@x.com", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateToken("a@x.com").
		RunAndReturn(func(string) (string, error) {
			// The client goes away right after the token is issued.
			cancel()

			return "token-a", nil
		})
	fx.eventPublisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(publishCtx context.Context, _ *entity.AccountEvent) error {
			assert.NoError(t, publishCtx.Err())
			deadline, ok := publishCtx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(eventPublishTimeout), deadline, time.Second)

			return nil
		})

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "b@x.com", Username: "bob", PasswordHash: "hashed-pw2", IsActive: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "b@x.com").Return(user, nil)
	fx.hasher.EXPECT().Verify("pw2", "hashed-pw2").Return(nil)
	fx.tokenService.EXPECT().GenerateToken("b@x.com").Return("token-b", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "pw2"})

	require.NoError(t, err)
	assert.Equal(t, "token-b", output.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, output.TokenType)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	unknown := createTestAuthService(t)
	unknownCtx, unknownLogs := newCapturingContext()
	unknown.userRepo.EXPECT().FindByEmail(unknownCtx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Hash(timingEqualizerPassword).Return("dummy-hash", nil).Once()
	unknown.hasher.EXPECT().Verify("pw", "dummy-hash").Return(domainerrors.ErrPasswordMismatch)

	_, unknownErr := unknown.service.Login(unknownCtx, &usecase.LoginInput{Email: "ghost@x.com", Password: "pw"})

	wrong := createTestAuthService(t)
	wrongCtx, wrongLogs := newCapturingContext()
	wrong.userRepo.EXPECT().
		FindByEmail(wrongCtx, "b@x.com").
		Return(&entity.User{ID: 7, Email: "b@x.com", PasswordHash: "hashed-pw2"}, nil)
	wrong.hasher.EXPECT().Verify("pw", "hashed-pw2").Return(domainerrors.ErrPasswordMismatch)

	_, wrongErr := wrong.service.Login(wrongCtx, &usecase.LoginInput{Email: "b@x.com", Password: "pw"})

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	// The server log still tells them apart.
	assert.Contains(t, unknownLogs.String(), "user not found")
	assert.Contains(t, wrongLogs.String(), "password mismatch")
}

func TestAuthService_Login_DummyHashComputedOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound).Times(2)
	fx.hasher.EXPECT().Hash(timingEqualizerPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Verify("pw", "dummy-hash").Return(domainerrors.ErrPasswordMismatch).Times(2)

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, logs := newCapturingContext()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "b@x.com").
		Return(&entity.User{ID: 7, Email: "b@x.com", PasswordHash: "garbage"}, nil)
	fx.hasher.EXPECT().
		Verify("pw2", "garbage").
		Return(errors.Wrap(domainerrors.ErrInvalidCredentialFormat, "crypto/bcrypt: hashedSecret too short"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "pw2"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Contains(t, logs.String(), "malformed")
}

func TestAuthService_Login_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "b@x.com").Return(nil, errors.New("connection refused"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "pw2"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "b@x.com").
		Return(&entity.User{ID: 7, Email: "b@x.com", PasswordHash: "hashed-pw2"}, nil)
	fx.hasher.EXPECT().Verify("pw2", "hashed-pw2").Return(nil)
	fx.tokenService.EXPECT().GenerateToken("b@x.com").Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "pw2"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
