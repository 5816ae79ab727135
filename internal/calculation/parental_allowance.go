package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// ParentalAllowanceCalculator computes Elterngeld per parent.
type ParentalAllowanceCalculator struct {
	Rules domain.ParentalAllowanceRules
}

// NewParentalAllowanceCalculator creates a parental allowance calculator with configurable values
func NewParentalAllowanceCalculator(rules domain.ParentalAllowanceRules) *ParentalAllowanceCalculator {
	return &ParentalAllowanceCalculator{Rules: rules}
}

// ReplacementRate returns the share of net income replaced.
// Below the low threshold the rate rises by one step per RateStepIncome euros of shortfall
// (capped at MaxRate); in the taper band it falls by the same step above the middle band.
func (c *ParentalAllowanceCalculator) ReplacementRate(net decimal.Decimal) decimal.Decimal {
	r := c.Rules
	switch {
	case net.LessThan(r.LowIncomeThreshold):
		steps := r.LowIncomeThreshold.Sub(net).Div(r.RateStepIncome)
		return decimal.Min(r.MiddleRate.Add(steps.Mul(r.RateStep)), r.MaxRate)
	case net.LessThan(r.MiddleUpperBound):
		return r.MiddleRate
	case net.LessThan(r.TaperUpperBound):
		steps := net.Sub(r.MiddleUpperBound).Div(r.RateStepIncome)
		return r.MiddleRate.Sub(steps.Mul(r.RateStep))
	default:
		return r.BaseRate
	}
}

// ForParent computes one parent's monthly amounts.
func (c *ParentalAllowanceCalculator) ForParent(net decimal.Decimal, children int, hasSibling bool) domain.ParentAllowance {
	r := c.Rules
	net = money.NonNegative(net)
	considered := decimal.Min(net, r.IncomeCap)
	rate := c.ReplacementRate(net)
	base := money.Clamp(considered.Mul(rate), r.Minimum, r.Maximum)

	multiple := r.MultipleBirthBonus.Mul(decimal.NewFromInt(int64(max(0, children-1))))
	sibling := decimal.Zero
	if hasSibling {
		sibling = decimal.Max(base.Mul(r.SiblingBonusRate), r.SiblingBonusMinimum)
	}
	basic := base.Add(multiple).Add(sibling)

	return domain.ParentAllowance{
		ConsideredIncome:   money.Cents(considered),
		Rate:               rate.Round(4),
		Base:               money.Cents(base),
		MultipleBirthBonus: money.Cents(multiple),
		SiblingBonus:       money.Cents(sibling),
		Basic:              money.Cents(basic),
		Plus:               money.Cents(basic.Div(two)),
		BasicMonths:        r.BasicMonths,
		PlusMonths:         r.BasicMonths * 2,
	}
}

// Calculate computes both parents. The income limit flag zeroes every figure.
func (c *ParentalAllowanceCalculator) Calculate(in domain.ParentalAllowanceInput) (domain.ParentalAllowanceResult, error) {
	if in.Children < 0 {
		return domain.ParentalAllowanceResult{}, inputError(ErrInvalidInput, "children", "must not be negative, got %d", in.Children)
	}
	children := max(1, in.Children)
	res := domain.ParentalAllowanceResult{Input: in}

	if in.IncomeLimitExceeded {
		res.Blocked = true
		res.Parent = zeroAllowance()
		if in.PartnerNetIncome != nil {
			partner := zeroAllowance()
			res.Partner = &partner
		}
		return res, nil
	}

	res.Parent = c.ForParent(in.NetIncome, children, in.HasSibling)
	if in.PartnerNetIncome != nil {
		partner := c.ForParent(*in.PartnerNetIncome, children, in.HasSibling)
		res.Partner = &partner
	}
	return res, nil
}

func zeroAllowance() domain.ParentAllowance {
	return domain.ParentAllowance{
		ConsideredIncome:   decimal.Zero,
		Rate:               decimal.Zero,
		Base:               decimal.Zero,
		MultipleBirthBonus: decimal.Zero,
		SiblingBonus:       decimal.Zero,
		Basic:              decimal.Zero,
		Plus:               decimal.Zero,
	}
}
