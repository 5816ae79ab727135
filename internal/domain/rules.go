package domain

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/pkg/dateutil"
)

// Rules is the versioned bundle of every constant the calculators read.
// One bundle is active per calculation; the engine keeps its own copy.
type Rules struct {
	Year              int                    `yaml:"year" json:"year"`
	IncomeTax         IncomeTaxRules         `yaml:"income_tax" json:"income_tax"`
	SocialInsurance   SocialInsuranceRules   `yaml:"social_insurance" json:"social_insurance"`
	Payroll           PayrollRules           `yaml:"payroll" json:"payroll"`
	Severance         SeveranceRules         `yaml:"severance" json:"severance"`
	VehicleTax        VehicleTaxRules        `yaml:"vehicle_tax" json:"vehicle_tax"`
	HousingBenefit    HousingBenefitRules    `yaml:"housing_benefit" json:"housing_benefit"`
	ParentalAllowance ParentalAllowanceRules `yaml:"parental_allowance" json:"parental_allowance"`
	ChildSupplement   ChildSupplementRules   `yaml:"child_supplement" json:"child_supplement"`
	Overtime          OvertimeRules          `yaml:"overtime" json:"overtime"`
	Fines             FineRules              `yaml:"fines" json:"fines"`
	NoticePeriod      NoticePeriodRules      `yaml:"notice_period" json:"notice_period"`
}

// PolynomialZone is one segment of a piecewise tariff.
// The zone value is Quadratic*y^2 + Linear*y + Constant with y = (x - Origin) / Scale.
type PolynomialZone struct {
	UpperBound *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"` // nil: unbounded
	Origin     decimal.Decimal  `yaml:"origin" json:"origin"`
	Scale      decimal.Decimal  `yaml:"scale" json:"scale"`                                 // zero is treated as 1
	Quadratic  decimal.Decimal  `yaml:"quadratic" json:"quadratic"`
	Linear     decimal.Decimal  `yaml:"linear" json:"linear"`
	Constant   decimal.Decimal  `yaml:"constant" json:"constant"`
}

// StepBand is one band of a progressive stepped rate table.
type StepBand struct {
	UpperBound *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"` // nil: unbounded
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
}

// IncomeTaxRules holds the §32a tariff and the wage-tax class adjustments.
type IncomeTaxRules struct {
	BasicAllowance             decimal.Decimal  `yaml:"basic_allowance" json:"basic_allowance"`                               // Default: 12348
	Zones                      []PolynomialZone `yaml:"zones" json:"zones"`
	SingleParentRelief         decimal.Decimal  `yaml:"single_parent_relief" json:"single_parent_relief"`                     // Default: 4260
	SingleParentReliefPerChild decimal.Decimal  `yaml:"single_parent_relief_per_child" json:"single_parent_relief_per_child"` // Default: 240
	Class5Factor               decimal.Decimal  `yaml:"class5_factor" json:"class5_factor"`                                   // Default: 1.25
	Class6MinimumRate          decimal.Decimal  `yaml:"class6_minimum_rate" json:"class6_minimum_rate"`                       // Default: 0.14
}

// SocialInsuranceRules holds employee-side contribution rates and monthly ceilings.
type SocialInsuranceRules struct {
	PensionCeiling          decimal.Decimal           `yaml:"pension_ceiling" json:"pension_ceiling"`                     // monthly, pension and unemployment
	HealthCeiling           decimal.Decimal           `yaml:"health_ceiling" json:"health_ceiling"`                       // monthly, health and care
	PensionRate             decimal.Decimal           `yaml:"pension_rate" json:"pension_rate"`
	UnemploymentRate        decimal.Decimal           `yaml:"unemployment_rate" json:"unemployment_rate"`
	HealthBaseRate          decimal.Decimal           `yaml:"health_base_rate" json:"health_base_rate"`
	DefaultSupplementalRate decimal.Decimal           `yaml:"default_supplemental_rate" json:"default_supplemental_rate"` // percent, Default: 2.9
	CareBaseRate            decimal.Decimal           `yaml:"care_base_rate" json:"care_base_rate"`
	CareChildlessSurcharge  decimal.Decimal           `yaml:"care_childless_surcharge" json:"care_childless_surcharge"`
	CareChildDiscount       decimal.Decimal           `yaml:"care_child_discount" json:"care_child_discount"`
	CareMaxDiscountSteps    int                       `yaml:"care_max_discount_steps" json:"care_max_discount_steps"`
	CareMinimumRate         decimal.Decimal           `yaml:"care_minimum_rate" json:"care_minimum_rate"`
	CareRegionalSurcharges  map[State]decimal.Decimal `yaml:"care_regional_surcharges" json:"care_regional_surcharges"`
}

// PayrollRules holds the wage-tax allowances, solidarity surcharge and church tax parameters.
type PayrollRules struct {
	WorkExpenseAllowance    decimal.Decimal           `yaml:"work_expense_allowance" json:"work_expense_allowance"`       // Default: 1230
	SpecialExpenseAllowance decimal.Decimal           `yaml:"special_expense_allowance" json:"special_expense_allowance"` // Default: 36
	WeeksPerMonth           decimal.Decimal           `yaml:"weeks_per_month" json:"weeks_per_month"`                     // Default: 4.33
	DefaultWeeklyHours      decimal.Decimal           `yaml:"default_weekly_hours" json:"default_weekly_hours"`           // Default: 40
	SoliExemption           decimal.Decimal           `yaml:"soli_exemption" json:"soli_exemption"`                       // annual income tax
	SoliRate                decimal.Decimal           `yaml:"soli_rate" json:"soli_rate"`
	SoliMitigationRate      decimal.Decimal           `yaml:"soli_mitigation_rate" json:"soli_mitigation_rate"`
	ChurchTaxRates          map[State]decimal.Decimal `yaml:"church_tax_rates" json:"church_tax_rates"`
	ChurchTaxDefaultRate    decimal.Decimal           `yaml:"church_tax_default_rate" json:"church_tax_default_rate"`
}

// SeveranceRules holds the one-fifth rule parameters.
type SeveranceRules struct {
	SpreadYears      int             `yaml:"spread_years" json:"spread_years"`               // Default: 5
	EstimateFactor   decimal.Decimal `yaml:"estimate_factor" json:"estimate_factor"`         // monthly salaries per year of service
	MaxChurchRatePct decimal.Decimal `yaml:"max_church_rate_pct" json:"max_church_rate_pct"` // Default: 9
}

// VehicleEra is one registration-date window of the vehicle tax law.
type VehicleEra struct {
	Name string `yaml:"name" json:"name"`
	// From is the first registration date the era applies to (inclusive).
	From              dateutil.Date                `yaml:"from" json:"from"`
	DisplacementRates map[FuelType]decimal.Decimal `yaml:"displacement_rates" json:"displacement_rates"`   // per started 100 cm³
	CO2Mode           CO2Mode                      `yaml:"co2_mode" json:"co2_mode"`
	CO2Allowance      decimal.Decimal              `yaml:"co2_allowance" json:"co2_allowance"`             // g/km
	CO2LinearRate     decimal.Decimal              `yaml:"co2_linear_rate" json:"co2_linear_rate"`
	CO2Bands          []StepBand                   `yaml:"co2_bands,omitempty" json:"co2_bands,omitempty"`
}

// VehicleTaxRules holds the eras (ordered by start date) and the electric exemption window.
type VehicleTaxRules struct {
	Eras                   []VehicleEra    `yaml:"eras" json:"eras"`
	ElectricRegisteredBy   dateutil.Date   `yaml:"electric_registered_by" json:"electric_registered_by"`     // Default: 2030-12-31
	ElectricExemptionUntil dateutil.Date   `yaml:"electric_exemption_until" json:"electric_exemption_until"` // Default: 2035-12-31
	DisplacementUnit       decimal.Decimal `yaml:"displacement_unit" json:"displacement_unit"`               // Default: 100
}

// HousingCoefficients are the a, b, c factors of the housing benefit formula for one household size.
type HousingCoefficients struct {
	A decimal.Decimal `yaml:"a" json:"a"`
	B decimal.Decimal `yaml:"b" json:"b"`
	C decimal.Decimal `yaml:"c" json:"c"`
}

// HousingBenefitRules holds the tables indexed by household size (1..8) and rent level (1..7).
type HousingBenefitRules struct {
	MaxHouseholdSize int                   `yaml:"max_household_size" json:"max_household_size"` // Default: 8
	RentLimits       [][]decimal.Decimal   `yaml:"rent_limits" json:"rent_limits"`               // [size-1][level-1]
	Heating          []decimal.Decimal     `yaml:"heating" json:"heating"`                       // [size-1]
	Climate          []decimal.Decimal     `yaml:"climate" json:"climate"`                       // [size-1]
	Coefficients     []HousingCoefficients `yaml:"coefficients" json:"coefficients"`             // [size-1]
	DeductionStep    decimal.Decimal       `yaml:"deduction_step" json:"deduction_step"`         // Default: 0.10 per flag
	Factor           decimal.Decimal       `yaml:"factor" json:"factor"`                         // Default: 1.15
	MinimumPayment   decimal.Decimal       `yaml:"minimum_payment" json:"minimum_payment"`       // Default: 10
}

// ParentalAllowanceRules holds the replacement-rate schedule and bonuses.
type ParentalAllowanceRules struct {
	IncomeCap           decimal.Decimal `yaml:"income_cap" json:"income_cap"`                       // Default: 2770
	BaseRate            decimal.Decimal `yaml:"base_rate" json:"base_rate"`                         // Default: 0.65
	MiddleRate          decimal.Decimal `yaml:"middle_rate" json:"middle_rate"`                     // Default: 0.67
	LowIncomeThreshold  decimal.Decimal `yaml:"low_income_threshold" json:"low_income_threshold"`   // Default: 1000
	MiddleUpperBound    decimal.Decimal `yaml:"middle_upper_bound" json:"middle_upper_bound"`       // Default: 1200
	TaperUpperBound     decimal.Decimal `yaml:"taper_upper_bound" json:"taper_upper_bound"`         // Default: 1240
	RateStep            decimal.Decimal `yaml:"rate_step" json:"rate_step"`                         // Default: 0.001
	RateStepIncome      decimal.Decimal `yaml:"rate_step_income" json:"rate_step_income"`           // Default: 2
	MaxRate             decimal.Decimal `yaml:"max_rate" json:"max_rate"`                           // Default: 1
	Minimum             decimal.Decimal `yaml:"minimum" json:"minimum"`                             // Default: 300
	Maximum             decimal.Decimal `yaml:"maximum" json:"maximum"`                             // Default: 1800
	MultipleBirthBonus  decimal.Decimal `yaml:"multiple_birth_bonus" json:"multiple_birth_bonus"`   // Default: 300
	SiblingBonusRate    decimal.Decimal `yaml:"sibling_bonus_rate" json:"sibling_bonus_rate"`       // Default: 0.10
	SiblingBonusMinimum decimal.Decimal `yaml:"sibling_bonus_minimum" json:"sibling_bonus_minimum"` // Default: 75
	BasicMonths         int             `yaml:"basic_months" json:"basic_months"`                   // Default: 12
}

// ChildSupplementRules holds the means test parameters.
type ChildSupplementRules struct {
	MaxPerChild            decimal.Decimal                     `yaml:"max_per_child" json:"max_per_child"`                       // Default: 297
	ChildBenefitPerChild   decimal.Decimal                     `yaml:"child_benefit_per_child" json:"child_benefit_per_child"`   // Default: 259
	MinimumGross           map[HouseholdStatus]decimal.Decimal `yaml:"minimum_gross" json:"minimum_gross"`
	StandardNeed           map[HouseholdStatus]decimal.Decimal `yaml:"standard_need" json:"standard_need"`
	WithdrawalRate         decimal.Decimal                     `yaml:"withdrawal_rate" json:"withdrawal_rate"`                   // Default: 0.45
	ChildIncomeRate        decimal.Decimal                     `yaml:"child_income_rate" json:"child_income_rate"`               // Default: 0.45
	RentShare              decimal.Decimal                     `yaml:"rent_share" json:"rent_share"`                             // Default: 0.70
	WorkFlatAllowance      decimal.Decimal                     `yaml:"work_flat_allowance" json:"work_flat_allowance"`           // Default: 100
	InsuranceFlatAllowance decimal.Decimal                     `yaml:"insurance_flat_allowance" json:"insurance_flat_allowance"` // Default: 30
}

// OvertimeRules holds the surcharge exemption policy.
type OvertimeRules struct {
	WeeksPerMonth          decimal.Decimal `yaml:"weeks_per_month" json:"weeks_per_month"`                       // Default: 4.333
	TaxFreeMinWeeklyHours  decimal.Decimal `yaml:"tax_free_min_weekly_hours" json:"tax_free_min_weekly_hours"`   // Default: 40
	TaxFreeMaxSurchargePct decimal.Decimal `yaml:"tax_free_max_surcharge_pct" json:"tax_free_max_surcharge_pct"` // Default: 25
	DefaultTaxRatePct      decimal.Decimal `yaml:"default_tax_rate_pct" json:"default_tax_rate_pct"`             // Default: 35
}

// FineTier is one row of a speeding fine table; overage range is inclusive.
type FineTier struct {
	Min         int             `yaml:"min" json:"min"`
	Max         int             `yaml:"max" json:"max"`
	Fine        decimal.Decimal `yaml:"fine" json:"fine"`
	Points      int             `yaml:"points" json:"points"`
	BanMonths   int             `yaml:"ban_months,omitempty" json:"ban_months,omitempty"`
	BanOnRepeat bool            `yaml:"ban_on_repeat,omitempty" json:"ban_on_repeat,omitempty"` // ban only for repeat offenders
}

// FineRules holds the four tier tables and the surrounding policy.
type FineRules struct {
	MaxSpeed              int             `yaml:"max_speed" json:"max_speed"`                                 // Default: 350
	FlatToleranceBelow    int             `yaml:"flat_tolerance_below" json:"flat_tolerance_below"`           // Default: 100
	FlatTolerance         int             `yaml:"flat_tolerance" json:"flat_tolerance"`                       // Default: 3
	ToleranceRate         decimal.Decimal `yaml:"tolerance_rate" json:"tolerance_rate"`                       // Default: 0.03
	FeeThreshold          decimal.Decimal `yaml:"fee_threshold" json:"fee_threshold"`                         // Default: 60
	Fee                   decimal.Decimal `yaml:"fee" json:"fee"`                                             // Default: 28.50
	ProbationThreshold    int             `yaml:"probation_threshold" json:"probation_threshold"`             // Default: 21
	ProbationExtensionYrs int             `yaml:"probation_extension_years" json:"probation_extension_years"` // Default: 2
	UrbanLight            []FineTier      `yaml:"urban_light" json:"urban_light"`
	RuralLight            []FineTier      `yaml:"rural_light" json:"rural_light"`
	UrbanHeavy            []FineTier      `yaml:"urban_heavy" json:"urban_heavy"`
	RuralHeavy            []FineTier      `yaml:"rural_heavy" json:"rural_heavy"`
}

// NoticeStep maps a minimum tenure in years to a notice period in months.
type NoticeStep struct {
	MinYears int `yaml:"min_years" json:"min_years"`
	Months   int `yaml:"months" json:"months"`
}

// NoticePeriodRules holds the statutory notice schedule.
type NoticePeriodRules struct {
	ProbationMonths int          `yaml:"probation_months" json:"probation_months"` // Default: 6
	ProbationDays   int          `yaml:"probation_days" json:"probation_days"`     // Default: 14
	BasicYears      int          `yaml:"basic_years" json:"basic_years"`           // Default: 2
	BasicDays       int          `yaml:"basic_days" json:"basic_days"`             // Default: 28
	MidMonthDay     int          `yaml:"mid_month_day" json:"mid_month_day"`       // Default: 15
	Steps           []NoticeStep `yaml:"steps" json:"steps"`                       // ascending by MinYears
}
