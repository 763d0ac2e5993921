package handler

import (
	"net/http"

	"storm/internal/delivery/http/middleware"
	"storm/internal/delivery/http/response"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the authenticated account endpoints.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetProfile handles GET /user/profile. It must run behind AuthMiddleware.Authenticate.
func (h *UserHandler) GetProfile(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "subject missing from context")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(user), "")
}
