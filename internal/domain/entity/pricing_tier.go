package entity

// Unlimited is the sentinel used by tier limits that have no upper bound.
const Unlimited = -1

// PricingTier describes one subscription plan in the catalog.
type PricingTier struct {
	Name                   string
	Price                  float64
	Features               []string
	MaxDeployments         int // Unlimited when -1.
	MaxConcurrentInstances int // Unlimited when -1.
	SupportLevel           string
}

// IsUnlimitedDeployments reports whether the tier has no deployment cap.
func (t *PricingTier) IsUnlimitedDeployments() bool {
	return t.MaxDeployments == Unlimited
}

// IsUnlimitedInstances reports whether the tier has no concurrent instance cap.
func (t *PricingTier) IsUnlimitedInstances() bool {
	return t.MaxConcurrentInstances == Unlimited
}

// DefaultPricingTiers returns the catalog seeded into an empty store, in display order.
func DefaultPricingTiers() []*PricingTier {
	return []*PricingTier{
		{
			Name:  "Basic",
			Price: 44.0,
			Features: []string{
				"Up to 5 deployments",
				"Email support",
				"Basic monitoring",
				"1 concurrent instance",
			},
			MaxDeployments:         5,
			MaxConcurrentInstances: 1,
			SupportLevel:           "email",
		},
		{
			Name:  "Professional",
			Price: 74.0,
			Features: []string{
				"Up to 25 deployments",
				"Priority support",
				"Advanced monitoring",
				"5 concurrent instances",
				"Multi-cloud",
				"Auto-scaling",
			},
			MaxDeployments:         25,
			MaxConcurrentInstances: 5,
			SupportLevel:           "priority",
		},
		{
			Name:  "Enterprise",
			Price: 94.0,
			Features: []string{
				"Unlimited deployments",
				"24/7 phone support",
				"Custom integrations",
				"Unlimited concurrent instances",
				"Dedicated account manager",
				"SLA guarantee",
			},
			MaxDeployments:         Unlimited,
			MaxConcurrentInstances: Unlimited,
			SupportLevel:           "phone",
		},
	}
}
