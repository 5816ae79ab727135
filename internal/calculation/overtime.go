package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// OvertimeCalculator values overtime hours from a monthly salary.
type OvertimeCalculator struct {
	Rules domain.OvertimeRules
}

// NewOvertimeCalculator creates an overtime calculator with configurable values
func NewOvertimeCalculator(rules domain.OvertimeRules) *OvertimeCalculator {
	return &OvertimeCalculator{Rules: rules}
}

// Calculate returns overtime pay and the time-off equivalent.
// The tax-free share applies only to full-time contracts and is capped at the maximum surcharge.
func (c *OvertimeCalculator) Calculate(in domain.OvertimeInput) (domain.OvertimeResult, error) {
	r := c.Rules
	if !in.WeeklyHours.IsPositive() {
		return domain.OvertimeResult{}, inputError(ErrIndeterminate, "weekly_hours", "must be positive to derive an hourly rate, got %s", in.WeeklyHours)
	}
	if in.OvertimeHours.IsNegative() {
		return domain.OvertimeResult{}, inputError(ErrInvalidInput, "overtime_hours", "must not be negative, got %s", in.OvertimeHours)
	}
	if in.SurchargePct.IsNegative() {
		return domain.OvertimeResult{}, inputError(ErrInvalidInput, "surcharge_pct", "must not be negative, got %s", in.SurchargePct)
	}
	taxRate := r.DefaultTaxRatePct
	if in.TaxRatePct != nil {
		taxRate = *in.TaxRatePct
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return domain.OvertimeResult{}, inputError(ErrInvalidInput, "tax_rate_pct", "must be between 0 and 100, got %s", taxRate)
	}

	hourly := money.NonNegative(in.MonthlyGross).Div(in.WeeklyHours.Mul(r.WeeksPerMonth))
	base := in.OvertimeHours.Mul(hourly)
	surcharge := base.Mul(in.SurchargePct).Div(hundred)
	total := base.Add(surcharge)

	taxFree := decimal.Zero
	if !in.WeeklyHours.LessThan(r.TaxFreeMinWeeklyHours) && in.SurchargePct.IsPositive() {
		taxFree = base.Mul(decimal.Min(in.SurchargePct, r.TaxFreeMaxSurchargePct)).Div(hundred)
	}
	taxable := total.Sub(taxFree)
	net := taxFree.Add(taxable.Mul(one.Sub(taxRate.Div(hundred))))

	return domain.OvertimeResult{
		Input:        in,
		HourlyRate:   money.Cents(hourly),
		BasePay:      money.Cents(base),
		SurchargePay: money.Cents(surcharge),
		TotalGross:   money.Cents(total),
		TaxFree:      money.Cents(taxFree),
		Taxable:      money.Cents(taxable),
		TaxRatePct:   taxRate,
		Net:          money.Cents(net),
		TimeOffBase:  in.OvertimeHours,
		TimeOffTotal: in.OvertimeHours.Mul(one.Add(in.SurchargePct.Div(hundred))).Round(2),
	}, nil
}
