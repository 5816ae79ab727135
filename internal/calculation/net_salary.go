package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// NetSalaryCalculator combines wage tax, solidarity surcharge, church tax and
// social insurance into monthly net pay.
type NetSalaryCalculator struct {
	Rules           domain.PayrollRules
	IncomeTax       *IncomeTaxCalculator
	SocialInsurance *SocialInsuranceCalculator
	logger          Logger
}

// NewNetSalaryCalculator creates a net salary calculator from a rules bundle
func NewNetSalaryCalculator(rules domain.Rules, logger Logger) *NetSalaryCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &NetSalaryCalculator{
		Rules:           rules.Payroll,
		IncomeTax:       NewIncomeTaxCalculator(rules.IncomeTax),
		SocialInsurance: NewSocialInsuranceCalculator(rules.SocialInsurance),
		logger:          logger,
	}
}

// SolidaritySurcharge returns the annual surcharge on an annual income tax amount.
// Above the exemption the mitigation zone caps the surcharge at a share of the excess.
func (c *NetSalaryCalculator) SolidaritySurcharge(annualTax decimal.Decimal) decimal.Decimal {
	if annualTax.LessThanOrEqual(c.Rules.SoliExemption) {
		return decimal.Zero
	}
	full := annualTax.Mul(c.Rules.SoliRate)
	mitigated := annualTax.Sub(c.Rules.SoliExemption).Mul(c.Rules.SoliMitigationRate)
	return decimal.Min(full, mitigated)
}

// ChurchTaxRate returns the state's rate or the default rate for unlisted states.
func (c *NetSalaryCalculator) ChurchTaxRate(state domain.State) decimal.Decimal {
	if rate, ok := c.Rules.ChurchTaxRates[state.Normalize()]; ok {
		return rate
	}
	return c.Rules.ChurchTaxDefaultRate
}

// Calculate runs the full gross-to-net computation.
func (c *NetSalaryCalculator) Calculate(in domain.NetSalaryInput) (domain.NetSalaryResult, error) {
	if !in.TaxClass.Valid() {
		return domain.NetSalaryResult{}, inputError(ErrInvalidTaxClass, "tax_class", "must be between 1 and 6, got %d", in.TaxClass)
	}
	if in.Children < 0 {
		return domain.NetSalaryResult{}, inputError(ErrInvalidInput, "children", "must not be negative, got %d", in.Children)
	}

	gross := in.Gross
	if gross.IsNegative() {
		c.logger.Warnf("net salary: negative gross %s clamped to 0", gross)
		gross = decimal.Zero
	}
	switch in.Period {
	case domain.PeriodAnnual:
		gross = gross.Div(twelve)
	case domain.PeriodMonthly, "":
	default:
		return domain.NetSalaryResult{}, inputError(ErrUnknownSelector, "period", "unknown period %q", in.Period)
	}

	supplemental := c.SocialInsurance.Rules.DefaultSupplementalRate
	if in.SupplementalHealthRate != nil {
		supplemental = money.NonNegative(*in.SupplementalHealthRate)
	}
	weeklyHours := c.Rules.DefaultWeeklyHours
	if in.WeeklyHours != nil {
		weeklyHours = *in.WeeklyHours
	}
	if weeklyHours.IsNegative() {
		return domain.NetSalaryResult{}, inputError(ErrIndeterminate, "weekly_hours", "must not be negative, got %s", weeklyHours)
	}

	annualGross := gross.Mul(twelve)
	sv := c.SocialInsurance.Contributions(gross, in.Children, in.State, supplemental)
	allowance := c.SocialInsurance.PensionAllowance(annualGross, in.Children, in.State, supplemental)
	taxable := money.NonNegative(annualGross.Sub(c.Rules.WorkExpenseAllowance).Sub(c.Rules.SpecialExpenseAllowance).Sub(allowance))

	annualTax, err := c.IncomeTax.AnnualTax(taxable, in.TaxClass, in.Children)
	if err != nil {
		return domain.NetSalaryResult{}, err
	}
	monthlyTax := annualTax.Div(twelve)
	soli := c.SolidaritySurcharge(annualTax).Div(twelve)

	churchRate := decimal.Zero
	church := decimal.Zero
	if in.ChurchTax {
		churchRate = c.ChurchTaxRate(in.State)
		church = monthlyTax.Mul(churchRate)
	}

	totalTax := monthlyTax.Add(soli).Add(church)
	deductions := totalTax.Add(sv.Total)
	net := gross.Sub(deductions)

	ratio := decimal.Zero
	if gross.IsPositive() {
		ratio = deductions.Div(gross).Mul(hundred)
	}

	var hourly *decimal.Decimal
	if weeklyHours.IsPositive() {
		h := money.Cents(net.Div(weeklyHours.Mul(c.Rules.WeeksPerMonth)))
		hourly = &h
	} else {
		c.logger.Debugf("net salary: zero weekly hours, hourly wage left undefined")
	}

	return domain.NetSalaryResult{
		Input:               in,
		GrossMonthly:        money.Cents(gross),
		GrossAnnual:         money.Cents(annualGross),
		PensionAllowance:    allowance,
		TaxableIncome:       money.Cents(taxable),
		IncomeTaxAnnual:     annualTax,
		IncomeTax:           money.Cents(monthlyTax),
		SolidaritySurcharge: money.Cents(soli),
		ChurchTax:           money.Cents(church),
		ChurchTaxRate:       churchRate,
		TotalTax:            money.Cents(totalTax),
		SocialInsurance:     roundContributions(sv),
		TotalDeductions:     money.Cents(deductions),
		NetMonthly:          money.Cents(net),
		NetAnnual:           money.Cents(net.Mul(twelve)),
		DeductionRatio:      ratio.Round(2),
		HourlyNet:           hourly,
	}, nil
}

func roundContributions(sv domain.SocialInsuranceResult) domain.SocialInsuranceResult {
	return domain.SocialInsuranceResult{
		Pension:      money.Cents(sv.Pension),
		Unemployment: money.Cents(sv.Unemployment),
		Health:       money.Cents(sv.Health),
		Care:         money.Cents(sv.Care),
		CareRate:     sv.CareRate,
		Total:        money.Cents(sv.Total),
	}
}
