package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/dateutil"
	"github.com/steuerkit/rechner/pkg/money"
)

// VehicleTaxCalculator computes the annual motor vehicle tax (Kfz-Steuer) for passenger cars.
type VehicleTaxCalculator struct {
	Rules  domain.VehicleTaxRules
	logger Logger
}

// NewVehicleTaxCalculator creates a vehicle tax calculator with configurable values
func NewVehicleTaxCalculator(rules domain.VehicleTaxRules, logger Logger) *VehicleTaxCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &VehicleTaxCalculator{Rules: rules, logger: logger}
}

// EraFor returns the era that applies to a first registration date.
func (c *VehicleTaxCalculator) EraFor(registered dateutil.Date) (domain.VehicleEra, bool) {
	var (
		era   domain.VehicleEra
		found bool
	)
	for _, e := range c.Rules.Eras {
		if e.From.IsZero() || !registered.Before(e.From) {
			era, found = e, true
		}
	}
	return era, found
}

// Calculate returns the tax split into displacement and CO2 parts.
func (c *VehicleTaxCalculator) Calculate(in domain.VehicleProfile) (domain.VehicleTaxResult, error) {
	if !in.Fuel.Valid() {
		return domain.VehicleTaxResult{}, inputError(ErrUnknownSelector, "fuel", "unknown fuel type %q", in.Fuel)
	}
	if in.FirstRegistration.IsZero() {
		return domain.VehicleTaxResult{}, inputError(ErrInvalidInput, "first_registration", "date is required")
	}
	res := domain.VehicleTaxResult{
		Input:            in,
		DisplacementRate: decimal.Zero,
		DisplacementTax:  decimal.Zero,
		CO2Tax:           decimal.Zero,
		AnnualTax:        decimal.Zero,
		MonthlyTax:       decimal.Zero,
		Breakdown:        []domain.CO2Share{},
	}

	if in.Fuel == domain.FuelElectric {
		res.Era = "electric"
		res.Exempt = !in.FirstRegistration.After(c.Rules.ElectricRegisteredBy) && !today().After(c.Rules.ElectricExemptionUntil)
		if res.Exempt {
			res.ExemptUntil = c.Rules.ElectricExemptionUntil
		}
		return res, nil
	}

	if in.Displacement < 0 {
		return domain.VehicleTaxResult{}, inputError(ErrInvalidInput, "displacement", "must not be negative, got %d", in.Displacement)
	}
	if in.CO2 < 0 {
		return domain.VehicleTaxResult{}, inputError(ErrInvalidInput, "co2", "must not be negative, got %d", in.CO2)
	}
	era, ok := c.EraFor(in.FirstRegistration)
	if !ok {
		return domain.VehicleTaxResult{}, inputError(ErrInvalidInput, "first_registration", "no tax rules for %s", in.FirstRegistration)
	}
	res.Era = era.Name

	unit := c.Rules.DisplacementUnit
	if !unit.IsPositive() {
		unit = hundred
	}
	units := decimal.NewFromInt(int64(in.Displacement)).Div(unit).Ceil()
	res.DisplacementUnits = int(units.IntPart())
	res.DisplacementRate = era.DisplacementRates[in.Fuel]
	displacementTax := units.Mul(res.DisplacementRate)

	co2Tax, shares := c.co2Tax(era, in.CO2)
	res.CO2Allowance = int(era.CO2Allowance.IntPart())
	if era.CO2Mode != domain.CO2None {
		res.CO2OverAllowance = max(0, in.CO2-res.CO2Allowance)
	}
	res.Breakdown = shares

	annual := displacementTax.Add(co2Tax)
	res.DisplacementTax = money.Cents(displacementTax)
	res.CO2Tax = money.Cents(co2Tax)
	res.AnnualTax = money.Cents(annual)
	res.MonthlyTax = money.Cents(annual.Div(twelve))
	c.logger.Debugf("vehicle tax: era=%s units=%d co2=%d annual=%s", era.Name, res.DisplacementUnits, in.CO2, res.AnnualTax)
	return res, nil
}

// co2Tax returns the unrounded emission tax and its per-band breakdown. Progressive bands
// are measured from the era allowance, which is the fixed 95 g/km baseline in the 2014 rules.
func (c *VehicleTaxCalculator) co2Tax(era domain.VehicleEra, co2 int) (decimal.Decimal, []domain.CO2Share) {
	grams := decimal.NewFromInt(int64(co2))
	allowance := era.CO2Allowance
	shares := []domain.CO2Share{}

	switch era.CO2Mode {
	case domain.CO2Linear:
		if grams.LessThanOrEqual(allowance) {
			return decimal.Zero, shares
		}
		excess := grams.Sub(allowance)
		amount := excess.Mul(era.CO2LinearRate)
		shares = append(shares, domain.CO2Share{
			From:   int(allowance.IntPart()) + 1,
			To:     co2,
			Grams:  int(excess.IntPart()),
			Rate:   era.CO2LinearRate,
			Amount: money.Cents(amount),
		})
		return amount, shares
	case domain.CO2Progressive:
		step := ProgressiveStep(grams, allowance, era.CO2Bands)
		for _, s := range step.Shares {
			shares = append(shares, domain.CO2Share{
				From:   int(s.From.IntPart()) + 1,
				To:     int(s.To.IntPart()),
				Grams:  int(s.Width().IntPart()),
				Rate:   s.Rate,
				Amount: money.Cents(s.Amount),
			})
		}
		return step.Total, shares
	default:
		return decimal.Zero, shares
	}
}
