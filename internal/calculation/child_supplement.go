package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// ChildSupplementCalculator runs the Kinderzuschlag means test.
type ChildSupplementCalculator struct {
	Rules domain.ChildSupplementRules
}

// NewChildSupplementCalculator creates a child supplement calculator with configurable values
func NewChildSupplementCalculator(rules domain.ChildSupplementRules) *ChildSupplementCalculator {
	return &ChildSupplementCalculator{Rules: rules}
}

// Calculate returns the monthly supplement. Gate failures are zero results with an outcome, not errors.
func (c *ChildSupplementCalculator) Calculate(in domain.ChildSupplementInput) (domain.ChildSupplementResult, error) {
	r := c.Rules
	if !in.Status.Valid() {
		return domain.ChildSupplementResult{}, inputError(ErrUnknownSelector, "status", "must be %q or %q, got %q", domain.HouseholdSingle, domain.HouseholdCouple, in.Status)
	}
	if in.Children < 1 {
		return domain.ChildSupplementResult{}, inputError(ErrInvalidInput, "children", "must be at least 1, got %d", in.Children)
	}

	count := decimal.NewFromInt(int64(in.Children))
	gross := money.NonNegative(in.Gross)
	net := money.NonNegative(in.Net)
	if in.Status == domain.HouseholdCouple {
		gross = gross.Add(money.NonNegative(in.PartnerGross))
		net = net.Add(money.NonNegative(in.PartnerNet))
	}
	housing := money.NonNegative(in.HousingBenefit)

	res := domain.ChildSupplementResult{
		Input:             in,
		CombinedGross:     gross,
		MinimumGross:      r.MinimumGross[in.Status],
		MaxSupplement:     r.MaxPerChild.Mul(count),
		AdjustedNet:       decimal.Zero,
		ParentNeed:        decimal.Zero,
		IncomeDeduction:   decimal.Zero,
		ChildDeduction:    decimal.Zero,
		Supplement:        decimal.Zero,
		ChildBenefitTotal: r.ChildBenefitPerChild.Mul(count),
	}

	if !in.ReceivesChildBenefit {
		res.Outcome = domain.SupplementNoChildBenefit
		res.TotalSupport = res.ChildBenefitTotal
		return res, nil
	}
	if gross.LessThan(res.MinimumGross) {
		res.Outcome = domain.SupplementBelowMinimum
		res.TotalSupport = res.ChildBenefitTotal.Add(housing)
		return res, nil
	}

	childDeduction := money.NonNegative(in.ChildIncome).Mul(r.ChildIncomeRate)
	adjustedNet := net.Sub(r.WorkFlatAllowance).Sub(r.InsuranceFlatAllowance).Sub(money.NonNegative(in.VehicleInsurance))
	need := r.StandardNeed[in.Status].Add(money.NonNegative(in.WarmRent).Mul(r.RentShare))
	incomeDeduction := decimal.Zero
	if adjustedNet.GreaterThan(need) {
		incomeDeduction = adjustedNet.Sub(need).Mul(r.WithdrawalRate)
	}
	supplement := money.Clamp(res.MaxSupplement.Sub(childDeduction).Sub(incomeDeduction), decimal.Zero, res.MaxSupplement)

	res.AdjustedNet = money.Cents(adjustedNet)
	res.ParentNeed = money.Cents(need)
	res.ChildDeduction = money.Cents(childDeduction)
	res.IncomeDeduction = money.Cents(incomeDeduction)
	res.Supplement = money.Cents(supplement)
	res.Outcome = domain.SupplementEligible
	if !supplement.IsPositive() {
		res.Outcome = domain.SupplementIncomeTooHigh
	}
	res.TotalSupport = money.Cents(res.ChildBenefitTotal.Add(supplement).Add(housing))
	return res, nil
}
