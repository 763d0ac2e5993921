package impl

import (
	"context"
	"log/slog"

	deliverycontext "storm/internal/delivery/context"
	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	"storm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pricingService struct {
	txManager repository.TransactionManager
	tierRepo  repository.PricingTierRepository
	logger    *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TierRepo  repository.PricingTierRepository
	Logger    *slog.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		txManager: params.TxManager,
		tierRepo:  params.TierRepo,
		logger:    params.Logger,
	}
}

// ListTiers returns the catalog. An empty catalog is seeded with the default
// tiers; the upsert skips names that already exist, so concurrent first
// requests still end up with exactly one row per tier.
func (srv *pricingService) ListTiers(ctx context.Context) ([]*entity.PricingTier, error) {
	logger := deliverycontext.LoggerOrDefault(ctx, srv.logger)

	tiers, err := srv.tierRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list pricing tiers", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "list pricing tiers")
	}
	if len(tiers) > 0 {
		return tiers, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txTierRepo := repoFactory.PricingTierRepo()
		if err := txTierRepo.Upsert(ctx, entity.DefaultPricingTiers()); err != nil {
			return err
		}

		tiers, err = txTierRepo.List(ctx)

		return err
	})
	if err != nil {
		logger.Error("Failed to seed pricing tiers", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "seed pricing tiers")
	}

	logger.Info("Seeded default pricing tiers", slog.Int("count", len(tiers)))

	return tiers, nil
}
