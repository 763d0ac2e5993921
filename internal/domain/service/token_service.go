package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is used when no TTL is configured.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims defines the claims carried by an access token.
// The subject is the account email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a token for subject with the configured TTL.
	GenerateToken(subject string) (string, error)

	// GenerateTokenWithTTL issues a token for subject that expires after ttl.
	// A non-positive ttl yields a token that is already expired.
	GenerateTokenWithTTL(subject string, ttl time.Duration) (string, error)

	// ValidateToken checks signature and expiry.
	// Every failure wraps ErrInvalidToken; the wrapped cause tells them apart.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured TTL.
	AccessTokenDuration() time.Duration
}
