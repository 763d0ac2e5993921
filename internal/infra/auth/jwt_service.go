// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storm/config"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/service"
	"storm/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	issuer    string
	now       func() time.Time
	parser    *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// The signing secret is mandatory; there is no fallback value.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := service.DefaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return newJWTService([]byte(cfg.SecretKey.Access), ttl, cfg.Env.ServiceName, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, issuer string, now func() time.Time) *jwtService {
	return &jwtService{
		secret:    secret,
		accessTTL: ttl,
		issuer:    issuer,
		now:       now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}
}

// GenerateToken issues an access token for subject with the configured TTL.
func (s *jwtService) GenerateToken(subject string) (string, error) {
	return s.GenerateTokenWithTTL(subject, s.accessTTL)
}

// GenerateTokenWithTTL issues an access token for subject that expires after ttl.
func (s *jwtService) GenerateTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string.
// All failures wrap ErrInvalidToken with the underlying reason.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, classifyTokenError(err).Error())
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, domainerrors.ErrTokenMalformed.Error())
	}

	return claims, nil
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid
	default:
		return errors.Wrap(domainerrors.ErrTokenMalformed, err.Error())
	}
}
