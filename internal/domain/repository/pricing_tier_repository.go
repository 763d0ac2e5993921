package repository

import (
	"context"

	"storm/internal/domain/entity"
)

// PricingTierRepository persists the pricing catalog.
type PricingTierRepository interface {
	// List returns all tiers ordered by insertion.
	List(ctx context.Context) ([]*entity.PricingTier, error)

	// Upsert inserts tiers whose name is not yet present and leaves existing rows untouched.
	Upsert(ctx context.Context, tiers []*entity.PricingTier) error
}
