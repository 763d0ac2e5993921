package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentStatusPending is the status every deployment row starts in.
const DeploymentStatusPending = "pending"

// DeploymentModel mirrors the 'deployments' table.
// The service migrates it but never reads or writes deployments.
type DeploymentModel struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;index"`
	DeploymentID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_deployments_deployment_id;not null"`
	Prompt       string    `gorm:"type:text;not null"`
	Provider     string    `gorm:"type:varchar(50);not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CostEstimate float64
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeploymentModel) TableName() string {
	return "deployments"
}

// BeforeCreate assigns the public deployment identifier.
func (d *DeploymentModel) BeforeCreate(_ *gorm.DB) error {
	if d.DeploymentID == uuid.Nil {
		d.DeploymentID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DeploymentStatusPending
	}

	return nil
}
