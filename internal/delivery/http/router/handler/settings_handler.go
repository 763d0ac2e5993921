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

// SettingsHandler serves the per-account settings endpoints.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetSettings handles GET /user/settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "subject missing from context")
	}

	settings, err := h.uc.GetSettings(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings), "")
}

// UpdateSettings handles PUT /user/settings.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "subject missing from context")
	}

	var req UpdateSettingsRequest
	if valid, err := bindAndValidate(c, &req); !valid {
		return err
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), subject, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings), "Settings updated")
}
