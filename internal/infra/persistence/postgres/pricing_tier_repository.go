package postgres

import (
	"context"

	"storm/internal/domain/entity"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/domain/repository"
	"storm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pricingTierRepository struct {
	db *gorm.DB
}

// NewPricingTierRepository is the constructor for pricingTierRepository.
func NewPricingTierRepository(db *gorm.DB) repository.PricingTierRepository {
	return &pricingTierRepository{
		db: db,
	}
}

// List returns every tier in insertion order.
func (repo *pricingTierRepository) List(ctx context.Context) ([]*entity.PricingTier, error) {
	var tierModels []*model.PricingTierModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&tierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pricing tiers")
	}

	tiers := make([]*entity.PricingTier, 0, len(tierModels))
	for _, tierM := range tierModels {
		tiers = append(tiers, toPricingTierDomain(tierM))
	}

	return tiers, nil
}

// Upsert inserts the given tiers, skipping any whose name already exists.
// Concurrent callers converge on a single row per name.
func (repo *pricingTierRepository) Upsert(ctx context.Context, tiers []*entity.PricingTier) error {
	if len(tiers) == 0 {
		return nil
	}

	tierModels := make([]*model.PricingTierModel, 0, len(tiers))
	for _, tier := range tiers {
		tierModels = append(tierModels, fromPricingTierDomain(tier))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&tierModels).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed pricing tiers")
	}

	return nil
}

func toPricingTierDomain(data *model.PricingTierModel) *entity.PricingTier {
	features := make([]string, len(data.Features))
	copy(features, data.Features)

	return &entity.PricingTier{
		Name:                   data.Name,
		Price:                  data.Price,
		Features:               features,
		MaxDeployments:         data.MaxDeployments,
		MaxConcurrentInstances: data.MaxConcurrentInstances,
		SupportLevel:           data.SupportLevel,
	}
}

func fromPricingTierDomain(data *entity.PricingTier) *model.PricingTierModel {
	features := datatypes.JSONSlice[string]{}
	features = append(features, data.Features...)

	return &model.PricingTierModel{
		Name:                   data.Name,
		Price:                  data.Price,
		Features:               features,
		MaxDeployments:         data.MaxDeployments,
		MaxConcurrentInstances: data.MaxConcurrentInstances,
		SupportLevel:           data.SupportLevel,
	}
}
