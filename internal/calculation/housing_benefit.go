package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// HousingBenefitCalculator evaluates the Wohngeld formula
//
//	benefit = 1.15 × (M − (a + b·M + c·Y)·Y)
//
// with M the recognized monthly rent and Y the monthly income basis.
type HousingBenefitCalculator struct {
	Rules  domain.HousingBenefitRules
	logger Logger
}

// NewHousingBenefitCalculator creates a housing benefit calculator with configurable values
func NewHousingBenefitCalculator(rules domain.HousingBenefitRules, logger Logger) *HousingBenefitCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &HousingBenefitCalculator{Rules: rules, logger: logger}
}

// Calculate returns the monthly benefit in whole euros.
func (c *HousingBenefitCalculator) Calculate(in domain.HousingBenefitInput) (domain.HousingBenefitResult, error) {
	r := c.Rules
	if in.HouseholdSize < 1 {
		return domain.HousingBenefitResult{}, inputError(ErrInvalidInput, "household_size", "must be at least 1, got %d", in.HouseholdSize)
	}
	size := in.HouseholdSize
	if size > r.MaxHouseholdSize {
		c.logger.Debugf("housing benefit: household size %d clamped to %d", size, r.MaxHouseholdSize)
		size = r.MaxHouseholdSize
	}
	if in.RentLevel < 1 || in.RentLevel > len(r.RentLimits[size-1]) {
		return domain.HousingBenefitResult{}, inputError(ErrUnknownSelector, "rent_level", "must be between 1 and %d, got %d", len(r.RentLimits[size-1]), in.RentLevel)
	}

	deduction := decimal.Zero
	for _, flag := range []bool{in.PaysTax, in.PaysHealth, in.PaysPension} {
		if flag {
			deduction = deduction.Add(r.DeductionStep)
		}
	}

	adjustedGross := money.NonNegative(in.GrossIncome.Sub(money.NonNegative(in.WorkExpenses)))
	income := adjustedGross.Div(twelve).Mul(one.Sub(deduction)).Floor()

	limit := r.RentLimits[size-1][in.RentLevel-1]
	heating := r.Heating[size-1]
	climate := r.Climate[size-1]
	recognizedCold := decimal.Min(money.NonNegative(in.ColdRent), limit)
	rent := recognizedCold.Add(heating).Add(climate).Ceil()

	res := domain.HousingBenefitResult{
		Input:             in,
		HouseholdSize:     size,
		DeductionRate:     deduction,
		MonthlyIncome:     income,
		RentLimit:         limit,
		HeatingComponent:  heating,
		ClimateComponent:  climate,
		RecognizedRent:    rent,
		MaxRecognizedRent: limit.Add(heating).Add(climate),
		Benefit:           decimal.Zero,
	}
	if !rent.IsPositive() {
		return res, nil
	}

	k := r.Coefficients[size-1]
	z := k.A.Add(k.B.Mul(rent)).Add(k.C.Mul(income))
	benefit := money.NonNegative(r.Factor.Mul(rent.Sub(z.Mul(income)))).Floor()
	if benefit.LessThan(r.MinimumPayment) {
		res.BelowMinimum = benefit.IsPositive()
		benefit = decimal.Zero
	}
	res.Benefit = benefit
	return res, nil
}
