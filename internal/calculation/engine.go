package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
)

// Engine bundles every calculator behind one rules bundle.
type Engine struct {
	rules  domain.Rules
	Logger Logger

	NetSalaryCalc         *NetSalaryCalculator
	SeveranceCalc         *SeveranceCalculator
	VehicleTaxCalc        *VehicleTaxCalculator
	HousingBenefitCalc    *HousingBenefitCalculator
	ParentalAllowanceCalc *ParentalAllowanceCalculator
	ChildSupplementCalc   *ChildSupplementCalculator
	OvertimeCalc          *OvertimeCalculator
	FineCalc              *FineCalculator
	NoticePeriodCalc      *NoticePeriodCalculator
}

// NewEngine2026 creates an engine with the built-in 2026 rules.
func NewEngine2026() *Engine {
	return NewEngine(domain.DefaultRules())
}

// NewEngine creates a calculation engine with configurable rules
func NewEngine(rules domain.Rules) *Engine {
	e := &Engine{rules: rules}
	e.SetLogger(nil)
	return e
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.NetSalaryCalc = NewNetSalaryCalculator(e.rules, l)
	e.SeveranceCalc = NewSeveranceCalculator(e.rules, l)
	e.VehicleTaxCalc = NewVehicleTaxCalculator(e.rules.VehicleTax, l)
	e.HousingBenefitCalc = NewHousingBenefitCalculator(e.rules.HousingBenefit, l)
	e.ParentalAllowanceCalc = NewParentalAllowanceCalculator(e.rules.ParentalAllowance)
	e.ChildSupplementCalc = NewChildSupplementCalculator(e.rules.ChildSupplement)
	e.OvertimeCalc = NewOvertimeCalculator(e.rules.Overtime)
	e.FineCalc = NewFineCalculator(e.rules.Fines)
	e.NoticePeriodCalc = NewNoticePeriodCalculator(e.rules.NoticePeriod)
}

// Rules returns the rules bundle the engine was built with.
func (e *Engine) Rules() domain.Rules { return e.rules }

// NetSalary computes monthly net pay from gross salary, tax class and state.
func (e *Engine) NetSalary(in domain.NetSalaryInput) (domain.NetSalaryResult, error) {
	res, err := e.NetSalaryCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate net salary: %w", err)
	}
	return res, nil
}

// Severance compares the tax on a severance payment with and without the one-fifth rule.
func (e *Engine) Severance(in domain.SeveranceInput) (domain.SeveranceResult, error) {
	res, err := e.SeveranceCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate severance tax: %w", err)
	}
	return res, nil
}

// EstimateSeverance returns years of service times monthly gross times the rules factor (0.5 by default).
func (e *Engine) EstimateSeverance(in domain.SeveranceEstimate) decimal.Decimal {
	return e.SeveranceCalc.Estimate(in)
}

// VehicleTax computes the annual motor vehicle tax.
func (e *Engine) VehicleTax(in domain.VehicleProfile) (domain.VehicleTaxResult, error) {
	res, err := e.VehicleTaxCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate vehicle tax: %w", err)
	}
	return res, nil
}

// HousingBenefit computes the monthly Wohngeld. RentLevel must already be set.
func (e *Engine) HousingBenefit(in domain.HousingBenefitInput) (domain.HousingBenefitResult, error) {
	res, err := e.HousingBenefitCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate housing benefit: %w", err)
	}
	return res, nil
}

// ParentalAllowance computes Basiselterngeld and ElterngeldPlus for one or both parents.
func (e *Engine) ParentalAllowance(in domain.ParentalAllowanceInput) (domain.ParentalAllowanceResult, error) {
	res, err := e.ParentalAllowanceCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate parental allowance: %w", err)
	}
	return res, nil
}

// ChildSupplement runs the Kinderzuschlag means test.
func (e *Engine) ChildSupplement(in domain.ChildSupplementInput) (domain.ChildSupplementResult, error) {
	res, err := e.ChildSupplementCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate child supplement: %w", err)
	}
	return res, nil
}

// Overtime computes overtime pay, the tax-free surcharge share and the time-off equivalent.
func (e *Engine) Overtime(in domain.OvertimeInput) (domain.OvertimeResult, error) {
	res, err := e.OvertimeCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate overtime pay: %w", err)
	}
	return res, nil
}

// SpeedingFine looks up the fine, points and driving ban for a speeding offence.
func (e *Engine) SpeedingFine(in domain.SpeedingInput) (domain.SpeedingResult, error) {
	res, err := e.FineCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to look up speeding fine: %w", err)
	}
	return res, nil
}

// NoticePeriod computes the statutory employer notice period and the last working day.
func (e *Engine) NoticePeriod(in domain.NoticePeriodProfile) (domain.NoticePeriodResult, error) {
	res, err := e.NoticePeriodCalc.Calculate(in)
	if err != nil {
		return res, fmt.Errorf("failed to calculate notice period: %w", err)
	}
	return res, nil
}

// HouseholdIncome sums monthly household income by category.
func (e *Engine) HouseholdIncome(in domain.HouseholdIncomeInput) domain.HouseholdIncomeResult {
	return HouseholdIncome(in)
}
