package auth

import (
	"testing"
	"time"

	"storm/config"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "storm-test"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken("b@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", claims.Subject)
	assert.Equal(t, "storm-test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(service.DefaultAccessTokenTTL), claims.ExpiresAt.Time, 2*time.Second)
}

func TestJWTService_RoundTripsArbitrarySubjects(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	for _, subject := range []string{"a@x.com", "user+tag@example.org", "ünïcode@example.com"} {
		token, err := jwtService.GenerateToken(subject)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, subject, claims.Subject)
	}
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig(testSecret)
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.AccessTokenDuration())
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, jwtService.AccessTokenDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	for _, ttl := range []time.Duration{0, -time.Minute} {
		token, err := jwtService.GenerateTokenWithTTL("b@x.com", ttl)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		assert.Contains(t, err.Error(), domainerrors.ErrTokenExpired.Error())
	}
}

func TestJWTService_ExpiresOnClock(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	jwtService := newJWTService([]byte(testSecret), time.Minute, "", clock)

	token, err := jwtService.GenerateToken("b@x.com")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_DifferentSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("b@x.com")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Contains(t, err.Error(), domainerrors.ErrTokenSignatureInvalid.Error())
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken("b@x.com")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 2
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = jwtService.ValidateToken(string(tampered))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	for _, raw := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := jwtService.ValidateToken(raw)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		assert.Contains(t, err.Error(), domainerrors.ErrTokenMalformed.Error())
	}
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "b@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RequiresExpiration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "b@x.com"})
	token, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	jwtService, err = NewJWTService(nil)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
