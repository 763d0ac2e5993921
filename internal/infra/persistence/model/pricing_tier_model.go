package model

import (
	"gorm.io/datatypes"
)

// PricingTierModel mirrors the 'pricing_tiers' table.
// The unique name index is what makes catalog seeding idempotent.
type PricingTierModel struct {
	ID                     uint                        `gorm:"primaryKey;autoIncrement"`
	Name                   string                      `gorm:"type:varchar(50);uniqueIndex:idx_pricing_tiers_name;not null"`
	Price                  float64                     `gorm:"not null"`
	Features               datatypes.JSONSlice[string] `gorm:"not null"`
	MaxDeployments         int                         `gorm:"not null"`
	MaxConcurrentInstances int                         `gorm:"not null"`
	SupportLevel           string                      `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PricingTierModel) TableName() string {
	return "pricing_tiers"
}
