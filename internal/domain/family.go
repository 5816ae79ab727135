package domain

import "github.com/shopspring/decimal"

// ParentalAllowanceInput is the Elterngeld request for one or two parents.
type ParentalAllowanceInput struct {
	NetIncome           decimal.Decimal  `yaml:"net_income" json:"net_income"`
	PartnerNetIncome    *decimal.Decimal `yaml:"partner_net_income,omitempty" json:"partner_net_income,omitempty"`
	Children            int              `yaml:"children" json:"children"`                                         // born in this birth, Default: 1
	HasSibling          bool             `yaml:"has_sibling" json:"has_sibling"`
	IncomeLimitExceeded bool             `yaml:"income_limit_exceeded" json:"income_limit_exceeded"`
}

// ParentAllowance holds the figures for one parent.
type ParentAllowance struct {
	ConsideredIncome   decimal.Decimal `json:"considered_income"`
	Rate               decimal.Decimal `json:"rate"`
	Base               decimal.Decimal `json:"base"`
	MultipleBirthBonus decimal.Decimal `json:"multiple_birth_bonus"`
	SiblingBonus       decimal.Decimal `json:"sibling_bonus"`
	Basic              decimal.Decimal `json:"basic"`                // monthly, Basiselterngeld
	Plus               decimal.Decimal `json:"plus"`                 // monthly, ElterngeldPlus
	BasicMonths        int             `json:"basic_months"`
	PlusMonths         int             `json:"plus_months"`
}

// ParentalAllowanceResult holds both parents; Partner is nil when no partner income was given.
type ParentalAllowanceResult struct {
	Input ParentalAllowanceInput `json:"input"`

	Parent  ParentAllowance  `json:"parent"`
	Partner *ParentAllowance `json:"partner,omitempty"`
	Blocked bool             `json:"blocked"`           // income limit exceeded
}

// ChildSupplementInput is the Kinderzuschlag request. All amounts are monthly.
type ChildSupplementInput struct {
	Status               HouseholdStatus `yaml:"status" json:"status"`
	Children             int             `yaml:"children" json:"children"`
	ReceivesChildBenefit bool            `yaml:"receives_child_benefit" json:"receives_child_benefit"`
	Gross                decimal.Decimal `yaml:"gross" json:"gross"`
	PartnerGross         decimal.Decimal `yaml:"partner_gross" json:"partner_gross"`
	Net                  decimal.Decimal `yaml:"net" json:"net"`
	PartnerNet           decimal.Decimal `yaml:"partner_net" json:"partner_net"`
	WarmRent             decimal.Decimal `yaml:"warm_rent" json:"warm_rent"`
	ChildIncome          decimal.Decimal `yaml:"child_income" json:"child_income"`
	VehicleInsurance     decimal.Decimal `yaml:"vehicle_insurance" json:"vehicle_insurance"`
	HousingBenefit       decimal.Decimal `yaml:"housing_benefit" json:"housing_benefit"`
}

// ChildSupplementOutcome explains a result, in particular why it is zero.
type ChildSupplementOutcome string

const (
	SupplementEligible       ChildSupplementOutcome = "eligible"
	SupplementNoChildBenefit ChildSupplementOutcome = "no_child_benefit"
	SupplementBelowMinimum   ChildSupplementOutcome = "below_minimum_income"
	SupplementIncomeTooHigh  ChildSupplementOutcome = "income_too_high"
)

// ChildSupplementResult holds the monthly supplement and the family's total support.
type ChildSupplementResult struct {
	Input ChildSupplementInput `json:"input"`

	Outcome           ChildSupplementOutcome `json:"outcome"`
	CombinedGross     decimal.Decimal        `json:"combined_gross"`
	MinimumGross      decimal.Decimal        `json:"minimum_gross"`
	MaxSupplement     decimal.Decimal        `json:"max_supplement"`
	AdjustedNet       decimal.Decimal        `json:"adjusted_net"`
	ParentNeed        decimal.Decimal        `json:"parent_need"`
	IncomeDeduction   decimal.Decimal        `json:"income_deduction"`
	ChildDeduction    decimal.Decimal        `json:"child_deduction"`
	Supplement        decimal.Decimal        `json:"supplement"`
	ChildBenefitTotal decimal.Decimal        `json:"child_benefit_total"`
	TotalSupport      decimal.Decimal        `json:"total_support"`
}
