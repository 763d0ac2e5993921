package entity

import "time"

// Values an account starts with before it saves any settings.
const (
	DefaultTheme                = "light"
	DefaultBudgetAlertThreshold = 100.0
	DefaultProvider             = "aws"
	DefaultRegion               = "us-east-1"
)

// UserSettings are the per-account preferences. The provider, region and
// budget fields are stored for clients only; the service never acts on them.
type UserSettings struct {
	UserID               uint64
	Theme                string
	NotificationsEnabled bool
	EmailNotifications   bool
	BudgetAlertThreshold float64
	DefaultProvider      string
	DefaultRegion        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DefaultUserSettings returns the settings reported for an account that has never saved any.
func DefaultUserSettings(userID uint64) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		Theme:                DefaultTheme,
		NotificationsEnabled: true,
		EmailNotifications:   true,
		BudgetAlertThreshold: DefaultBudgetAlertThreshold,
		DefaultProvider:      DefaultProvider,
		DefaultRegion:        DefaultRegion,
	}
}

// UserSettingsPatch is a partial update. Nil fields keep their current value.
type UserSettingsPatch struct {
	Theme                *string
	NotificationsEnabled *bool
	EmailNotifications   *bool
	BudgetAlertThreshold *float64
	DefaultProvider      *string
	DefaultRegion        *string
}

// Apply copies every non-nil field of patch onto s.
func (s *UserSettings) Apply(patch UserSettingsPatch) {
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.NotificationsEnabled != nil {
		s.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.EmailNotifications != nil {
		s.EmailNotifications = *patch.EmailNotifications
	}
	if patch.BudgetAlertThreshold != nil {
		s.BudgetAlertThreshold = *patch.BudgetAlertThreshold
	}
	if patch.DefaultProvider != nil {
		s.DefaultProvider = *patch.DefaultProvider
	}
	if patch.DefaultRegion != nil {
		s.DefaultRegion = *patch.DefaultRegion
	}
}
