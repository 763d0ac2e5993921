package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storm/internal/delivery/context"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextKeySubject holds the verified token subject (the account email).
	ContextKeySubject = "subject"

	bearerScheme = "bearer"
)

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects the request with ErrInvalidToken unless it carries a
// valid bearer token. The reason is logged, never returned.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger)

		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			logger.Warn("Rejected request without bearer token", slog.String("path", c.Path()))

			return errors.Wrap(domainerrors.ErrInvalidToken, "missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("Rejected invalid token", slog.String("path", c.Path()), slog.String("reason", err.Error()))

			return errors.WithStack(err)
		}

		c.Set(ContextKeySubject, claims.Subject)

		return next(c)
	}
}

// GetSubject returns the subject stored by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(ContextKeySubject).(string)

	return subject, ok && subject != ""
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
