package model

import "time"

// UserSettingsModel mirrors the 'user_settings' table, one row per user.
// Booleans carry no column default so an explicit false is written as false.
type UserSettingsModel struct {
	ID                   uint64    `gorm:"primaryKey;autoIncrement"`
	UserID               uint64    `gorm:"not null;uniqueIndex:idx_user_settings_user_id"`
	Theme                string    `gorm:"type:varchar(20);not null"`
	NotificationsEnabled bool      `gorm:"not null"`
	EmailNotifications   bool      `gorm:"not null"`
	BudgetAlertThreshold float64   `gorm:"not null"`
	DefaultProvider      string    `gorm:"type:varchar(50);not null"`
	DefaultRegion        string    `gorm:"type:varchar(50);not null"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}
