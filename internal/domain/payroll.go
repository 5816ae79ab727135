package domain

import (
	"github.com/shopspring/decimal"
)

// NetSalaryInput is the gross-to-net request for one employee.
type NetSalaryInput struct {
	Gross                  decimal.Decimal  `yaml:"gross" json:"gross"`
	Period                 Period           `yaml:"period" json:"period"`                                                         // Default: monthly
	TaxClass               TaxClass         `yaml:"tax_class" json:"tax_class"`
	Children               int              `yaml:"children" json:"children"`
	State                  State            `yaml:"state" json:"state"`
	ChurchTax              bool             `yaml:"church_tax" json:"church_tax"`
	SupplementalHealthRate *decimal.Decimal `yaml:"supplemental_health_rate,omitempty" json:"supplemental_health_rate,omitempty"` // percent
	WeeklyHours            *decimal.Decimal `yaml:"weekly_hours,omitempty" json:"weekly_hours,omitempty"`
}

// SocialInsuranceResult holds the monthly employee contributions.
type SocialInsuranceResult struct {
	Pension      decimal.Decimal `json:"pension"`
	Unemployment decimal.Decimal `json:"unemployment"`
	Health       decimal.Decimal `json:"health"`
	Care         decimal.Decimal `json:"care"`
	CareRate     decimal.Decimal `json:"care_rate"`
	Total        decimal.Decimal `json:"total"`
}

// NetSalaryResult holds monthly figures unless a field says otherwise.
type NetSalaryResult struct {
	Input NetSalaryInput `json:"input"`

	GrossMonthly        decimal.Decimal       `json:"gross_monthly"`
	GrossAnnual         decimal.Decimal       `json:"gross_annual"`
	PensionAllowance    decimal.Decimal       `json:"pension_allowance"`    // Vorsorgepauschale, annual
	TaxableIncome       decimal.Decimal       `json:"taxable_income"`       // annual
	IncomeTaxAnnual     decimal.Decimal       `json:"income_tax_annual"`
	IncomeTax           decimal.Decimal       `json:"income_tax"`
	SolidaritySurcharge decimal.Decimal       `json:"solidarity_surcharge"`
	ChurchTax           decimal.Decimal       `json:"church_tax"`
	ChurchTaxRate       decimal.Decimal       `json:"church_tax_rate"`
	TotalTax            decimal.Decimal       `json:"total_tax"`
	SocialInsurance     SocialInsuranceResult `json:"social_insurance"`
	TotalDeductions     decimal.Decimal       `json:"total_deductions"`
	NetMonthly          decimal.Decimal       `json:"net_monthly"`
	NetAnnual           decimal.Decimal       `json:"net_annual"`
	DeductionRatio      decimal.Decimal       `json:"deduction_ratio"`      // percent of gross
	HourlyNet           *decimal.Decimal      `json:"hourly_net"`           // nil when weekly hours are zero
}
