package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// SocialInsuranceCalculator computes the employee share of statutory contributions.
type SocialInsuranceCalculator struct {
	Rules domain.SocialInsuranceRules
}

// NewSocialInsuranceCalculator creates a contribution calculator with configurable values
func NewSocialInsuranceCalculator(rules domain.SocialInsuranceRules) *SocialInsuranceCalculator {
	return &SocialInsuranceCalculator{Rules: rules}
}

// CareRate returns the employee long-term care rate for the household.
func (c *SocialInsuranceCalculator) CareRate(children int, state domain.State) decimal.Decimal {
	r := c.Rules
	rate := r.CareBaseRate
	switch {
	case children == 0:
		rate = rate.Add(r.CareChildlessSurcharge)
	case children >= 2:
		steps := min(children-1, r.CareMaxDiscountSteps)
		rate = rate.Sub(r.CareChildDiscount.Mul(decimal.NewFromInt(int64(steps))))
	}
	if surcharge, ok := r.CareRegionalSurcharges[state.Normalize()]; ok {
		rate = rate.Add(surcharge)
	}
	return decimal.Max(rate, r.CareMinimumRate)
}

// HealthRate is the base rate plus half the supplemental rate given in percent.
func (c *SocialInsuranceCalculator) HealthRate(supplementalPct decimal.Decimal) decimal.Decimal {
	return c.Rules.HealthBaseRate.Add(supplementalPct.Div(hundred).Div(two))
}

// Contributions returns the monthly contributions for a monthly gross.
func (c *SocialInsuranceCalculator) Contributions(monthlyGross decimal.Decimal, children int, state domain.State, supplementalPct decimal.Decimal) domain.SocialInsuranceResult {
	gross := money.NonNegative(monthlyGross)
	pensionBase := decimal.Min(gross, c.Rules.PensionCeiling)
	healthBase := decimal.Min(gross, c.Rules.HealthCeiling)
	careRate := c.CareRate(children, state)

	res := domain.SocialInsuranceResult{
		Pension:      pensionBase.Mul(c.Rules.PensionRate),
		Unemployment: pensionBase.Mul(c.Rules.UnemploymentRate),
		Health:       healthBase.Mul(c.HealthRate(supplementalPct)),
		Care:         healthBase.Mul(careRate),
		CareRate:     careRate,
	}
	res.Total = res.Pension.Add(res.Unemployment).Add(res.Health).Add(res.Care)
	return res
}

// PensionAllowance is the annual Vorsorgepauschale: each part is computed on the annual
// gross capped at twelve monthly ceilings, rounded up to whole euros, then summed.
func (c *SocialInsuranceCalculator) PensionAllowance(annualGross decimal.Decimal, children int, state domain.State, supplementalPct decimal.Decimal) decimal.Decimal {
	gross := money.NonNegative(annualGross)
	pensionBase := decimal.Min(gross, c.Rules.PensionCeiling.Mul(twelve))
	healthBase := decimal.Min(gross, c.Rules.HealthCeiling.Mul(twelve))

	parts := []decimal.Decimal{
		pensionBase.Mul(c.Rules.PensionRate),
		healthBase.Mul(c.HealthRate(supplementalPct)),
		healthBase.Mul(c.CareRate(children, state)),
		pensionBase.Mul(c.Rules.UnemploymentRate),
	}
	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(p.Ceil())
	}
	return total
}
