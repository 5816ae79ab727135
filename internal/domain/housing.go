package domain

import "github.com/shopspring/decimal"

// HousingBenefitInput is the Wohngeld request. Income figures are annual, rent is monthly.
type HousingBenefitInput struct {
	HouseholdSize int             `yaml:"household_size" json:"household_size"`
	GrossIncome   decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	WorkExpenses  decimal.Decimal `yaml:"work_expenses" json:"work_expenses"`
	ColdRent      decimal.Decimal `yaml:"cold_rent" json:"cold_rent"`
	RentLevel     int             `yaml:"rent_level" json:"rent_level"`
	City          string          `yaml:"city,omitempty" json:"city,omitempty"` // resolved to RentLevel by the caller
	PaysTax       bool            `yaml:"pays_tax" json:"pays_tax"`
	PaysHealth    bool            `yaml:"pays_health" json:"pays_health"`
	PaysPension   bool            `yaml:"pays_pension" json:"pays_pension"`
}

// HousingBenefitResult holds the monthly benefit and the formula inputs it was derived from.
type HousingBenefitResult struct {
	Input HousingBenefitInput `json:"input"`

	HouseholdSize     int             `json:"household_size"`      // after clamping
	DeductionRate     decimal.Decimal `json:"deduction_rate"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`      // Y
	RentLimit         decimal.Decimal `json:"rent_limit"`
	HeatingComponent  decimal.Decimal `json:"heating_component"`
	ClimateComponent  decimal.Decimal `json:"climate_component"`
	RecognizedRent    decimal.Decimal `json:"recognized_rent"`     // M
	MaxRecognizedRent decimal.Decimal `json:"max_recognized_rent"`
	Benefit           decimal.Decimal `json:"benefit"`
	BelowMinimum      bool            `json:"below_minimum"`
}
