package supplier

import "github.com/sells-group/outreach-cli/internal/model"

// Revenue thresholds for size classification, in USD.
const (
	mediumRevenue        = 10_000_000
	enterpriseRevenue    = 100_000_000
	multinationalRevenue = 1_000_000_000
)

// SizeClassFor buckets an annual revenue figure. Unknown (zero) revenue
// classifies as startup.
func SizeClassFor(annualRevenue int64) model.SizeClass {
	switch {
	case annualRevenue >= multinationalRevenue:
		return model.SizeMultinational
	case annualRevenue >= enterpriseRevenue:
		return model.SizeEnterprise
	case annualRevenue >= mediumRevenue:
		return model.SizeMedium
	default:
		return model.SizeStartup
	}
}

// PotentialValueFor estimates the attainable deal value as 10% of annual
// revenue, floored.
func PotentialValueFor(annualRevenue int64) int64 {
	if annualRevenue <= 0 {
		return 0
	}
	return annualRevenue / 10
}

// SuccessProbabilityFor scores outreach success on a 0-100 scale: 65 base,
// +15 for revenue above $100M, +10 for more than 1000 employees, +10 for a
// verified contact, capped at 95.
func SuccessProbabilityFor(annualRevenue int64, employeeCount int, verified bool) int {
	p := 65
	if annualRevenue > enterpriseRevenue {
		p += 15
	}
	if employeeCount > 1000 {
		p += 10
	}
	if verified {
		p += 10
	}
	if p > 95 {
		p = 95
	}
	return p
}
