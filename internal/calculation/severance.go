package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// SeveranceCalculator applies the one-fifth rule (Fünftelregelung) to a severance payment.
// Taxes are the class-adjusted tariff on gross figures.
type SeveranceCalculator struct {
	Rules     domain.SeveranceRules
	IncomeTax *IncomeTaxCalculator
	logger    Logger
}

// NewSeveranceCalculator creates a severance calculator from a rules bundle
func NewSeveranceCalculator(rules domain.Rules, logger Logger) *SeveranceCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &SeveranceCalculator{Rules: rules.Severance, IncomeTax: NewIncomeTaxCalculator(rules.IncomeTax), logger: logger}
}

// Calculate compares smoothed and plain taxation of the severance.
func (c *SeveranceCalculator) Calculate(in domain.SeveranceInput) (domain.SeveranceResult, error) {
	if in.Children < 0 {
		return domain.SeveranceResult{}, inputError(ErrInvalidInput, "children", "must not be negative, got %d", in.Children)
	}
	regular := money.NonNegative(in.RegularIncome)
	severance := money.NonNegative(in.Severance)
	churchPct := money.Clamp(in.ChurchRatePct, decimal.Zero, c.Rules.MaxChurchRatePct)
	if !churchPct.Equal(in.ChurchRatePct) {
		c.logger.Warnf("severance: church rate %s%% clamped to %s%%", in.ChurchRatePct, churchPct)
	}
	surcharge := one.Add(churchPct.Div(hundred))
	spread := decimal.NewFromInt(int64(max(1, c.Rules.SpreadYears)))

	tax := func(income decimal.Decimal) (decimal.Decimal, error) {
		return c.IncomeTax.AnnualTax(income, in.TaxClass, in.Children)
	}
	taxRegular, err := tax(regular)
	if err != nil {
		return domain.SeveranceResult{}, err
	}
	taxWithFifth, err := tax(regular.Add(severance.Div(spread)))
	if err != nil {
		return domain.SeveranceResult{}, err
	}
	taxTotal, err := tax(regular.Add(severance))
	if err != nil {
		return domain.SeveranceResult{}, err
	}

	smoothed := taxWithFifth.Sub(taxRegular).Mul(spread)
	unsmoothed := taxTotal.Sub(taxRegular)
	smoothedTotal := smoothed.Mul(surcharge)
	unsmoothedTotal := unsmoothed.Mul(surcharge)

	netSeverance := severance.Sub(smoothedTotal)
	netUnsmoothed := severance.Sub(unsmoothedTotal)
	rawSaving := netSeverance.Sub(netUnsmoothed)
	netRegular := regular.Sub(taxRegular.Mul(surcharge))

	effective := decimal.Zero
	if severance.IsPositive() {
		effective = smoothedTotal.Div(severance).Mul(hundred)
	}

	return domain.SeveranceResult{
		Input:                  in,
		TaxRegular:             taxRegular,
		TaxWithFifth:           taxWithFifth,
		SmoothedTax:            smoothed,
		UnsmoothedTax:          unsmoothed,
		SmoothedTaxTotal:       money.Cents(smoothedTotal),
		UnsmoothedTaxTotal:     money.Cents(unsmoothedTotal),
		NetSeverance:           money.Cents(netSeverance),
		NetSeveranceUnsmoothed: money.Cents(netUnsmoothed),
		RawSaving:              money.Cents(rawSaving),
		TaxSaving:              money.Cents(money.NonNegative(rawSaving)),
		EffectiveRate:          effective.Round(2),
		NetRegular:             money.Cents(netRegular),
		TotalAnnualNet:         money.Cents(netRegular.Add(netSeverance)),
	}, nil
}

// Estimate returns the customary severance: years of service × monthly gross × factor,
// rounded to whole euros. Zero years or salary yield zero.
func (c *SeveranceCalculator) Estimate(in domain.SeveranceEstimate) decimal.Decimal {
	factor := c.Rules.EstimateFactor
	if in.Factor != nil && in.Factor.IsPositive() {
		factor = *in.Factor
	}
	if !in.Years.IsPositive() || !in.MonthlyGross.IsPositive() {
		return decimal.Zero
	}
	return in.Years.Mul(in.MonthlyGross).Mul(factor).Round(0)
}
