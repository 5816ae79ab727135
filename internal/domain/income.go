package domain

import "github.com/shopspring/decimal"

// IncomeCategory groups household income sources.
type IncomeCategory string

const (
	IncomeWork    IncomeCategory = "arbeit"
	IncomeFamily  IncomeCategory = "familie"
	IncomeHousing IncomeCategory = "wohnen"
	IncomeOther   IncomeCategory = "sonstiges"
)

// IncomeCategories lists the categories in display order.
var IncomeCategories = []IncomeCategory{IncomeWork, IncomeFamily, IncomeHousing, IncomeOther}

// HouseholdIncomeInput lists monthly household income by source.
type HouseholdIncomeInput struct {
	NetSalary       decimal.Decimal `yaml:"net_salary" json:"net_salary"`
	MiniJob         decimal.Decimal `yaml:"mini_job" json:"mini_job"`
	ChildBenefit    decimal.Decimal `yaml:"child_benefit" json:"child_benefit"`
	ChildSupplement decimal.Decimal `yaml:"child_supplement" json:"child_supplement"`
	ParentalAllow   decimal.Decimal `yaml:"parental_allowance" json:"parental_allowance"`
	Maintenance     decimal.Decimal `yaml:"maintenance" json:"maintenance"`
	HousingBenefit  decimal.Decimal `yaml:"housing_benefit" json:"housing_benefit"`
	CitizenBenefit  decimal.Decimal `yaml:"citizen_benefit" json:"citizen_benefit"`
	CareAllowance   decimal.Decimal `yaml:"care_allowance" json:"care_allowance"`
	StudentGrant    decimal.Decimal `yaml:"student_grant" json:"student_grant"`
	Pension         decimal.Decimal `yaml:"pension" json:"pension"`
	RentalIncome    decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	Other           decimal.Decimal `yaml:"other" json:"other"`
}

// HouseholdIncomeResult holds the per-category monthly sums and totals.
type HouseholdIncomeResult struct {
	Input HouseholdIncomeInput `json:"input"`

	ByCategory map[IncomeCategory]decimal.Decimal `json:"by_category"`
	Monthly    decimal.Decimal                    `json:"monthly"`
	Yearly     decimal.Decimal                    `json:"yearly"`
}
