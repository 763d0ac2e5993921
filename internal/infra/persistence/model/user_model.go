package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex:idx_users_username;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	IsActive         bool      `gorm:"not null"`
	SubscriptionTier string    `gorm:"type:varchar(50);not null;default:'free'"`
	CreatedAt        time.Time `gorm:"not null"`

	Deployments []DeploymentModel  `gorm:"foreignKey:UserID"`
	Settings    *UserSettingsModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
