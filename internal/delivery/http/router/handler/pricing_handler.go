package handler

import (
	"net/http"

	"storm/internal/delivery/http/response"
	"storm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PricingHandler serves the public pricing catalog.
type PricingHandler struct {
	uc usecase.PricingUsecase
}

// NewPricingHandler is the constructor for PricingHandler, injected by Fx.
func NewPricingHandler(uc usecase.PricingUsecase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// ListTiers handles GET /pricing/tiers.
func (h *PricingHandler) ListTiers(c echo.Context) error {
	tiers, err := h.uc.ListTiers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPricingTierResponses(tiers), "")
}
