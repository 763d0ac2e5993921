package usecase

import (
	"context"

	"storm/internal/domain/entity"
)

// PricingUsecase exposes the subscription catalog.
type PricingUsecase interface {
	// ListTiers returns the catalog, seeding the default tiers into an empty store first.
	ListTiers(ctx context.Context) ([]*entity.PricingTier, error)
}
