package handler

import (
	"time"

	"storm/internal/domain/entity"
	"storm/internal/usecase"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileResponse is returned by GET /user/profile.
type ProfileResponse struct {
	ID               uint64    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	SubscriptionTier string    `json:"subscription_tier"`
	CreatedAt        time.Time `json:"created_at"`
	IsActive         bool      `json:"is_active"`
}

// PricingTierResponse is one entry of GET /pricing/tiers.
type PricingTierResponse struct {
	Name                   string   `json:"name"`
	Price                  float64  `json:"price"`
	Features               []string `json:"features"`
	MaxDeployments         int      `json:"max_deployments"`
	MaxConcurrentInstances int      `json:"max_concurrent_instances"`
	SupportLevel           string   `json:"support_level"`
}

func newTokenResponse(output *usecase.AuthOutput) TokenResponse {
	return TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	}
}

func newProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		SubscriptionTier: user.SubscriptionTier,
		CreatedAt:        user.CreatedAt.UTC(),
		IsActive:         user.IsActive,
	}
}

func newPricingTierResponses(tiers []*entity.PricingTier) []PricingTierResponse {
	out := make([]PricingTierResponse, 0, len(tiers))
	for _, tier := range tiers {
		features := tier.Features
		if features == nil {
			features = []string{}
		}
		out = append(out, PricingTierResponse{
			Name:                   tier.Name,
			Price:                  tier.Price,
			Features:               features,
			MaxDeployments:         tier.MaxDeployments,
			MaxConcurrentInstances: tier.MaxConcurrentInstances,
			SupportLevel:           tier.SupportLevel,
		})
	}

	return out
}

// UpdateSettingsRequest is the body of PUT /user/settings. Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	Theme                *string  `json:"theme" validate:"omitnil,oneof=light dark system"`
	NotificationsEnabled *bool    `json:"notifications_enabled"`
	EmailNotifications   *bool    `json:"email_notifications"`
	BudgetAlertThreshold *float64 `json:"budget_alert_threshold" validate:"omitnil,gte=0"`
	DefaultProvider      *string  `json:"default_provider" validate:"omitnil,min=1,max=50"`
	DefaultRegion        *string  `json:"default_region" validate:"omitnil,min=1,max=50"`
}

// SettingsResponse is returned by GET and PUT /user/settings.
type SettingsResponse struct {
	Theme                string     `json:"theme"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	EmailNotifications   bool       `json:"email_notifications"`
	BudgetAlertThreshold float64    `json:"budget_alert_threshold"`
	DefaultProvider      string     `json:"default_provider"`
	DefaultRegion        string     `json:"default_region"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

func (req *UpdateSettingsRequest) toPatch() entity.UserSettingsPatch {
	return entity.UserSettingsPatch{
		Theme:                req.Theme,
		NotificationsEnabled: req.NotificationsEnabled,
		EmailNotifications:   req.EmailNotifications,
		BudgetAlertThreshold: req.BudgetAlertThreshold,
		DefaultProvider:      req.DefaultProvider,
		DefaultRegion:        req.DefaultRegion,
	}
}

func newSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	resp := SettingsResponse{
		Theme:                settings.Theme,
		NotificationsEnabled: settings.NotificationsEnabled,
		EmailNotifications:   settings.EmailNotifications,
		BudgetAlertThreshold: settings.BudgetAlertThreshold,
		DefaultProvider:      settings.DefaultProvider,
		DefaultRegion:        settings.DefaultRegion,
	}
	// Defaults that were never saved have no timestamp.
	if !settings.UpdatedAt.IsZero() {
		updatedAt := settings.UpdatedAt.UTC()
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
