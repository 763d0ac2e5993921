package model

// All lists every persisted model in dependency order.
// It drives both schema migration and query generation.
func All() []any {
	return []any{
		&UserModel{},
		&PricingTierModel{},
		&DeploymentModel{},
		&UserSettingsModel{},
	}
}
