package domain

import "github.com/shopspring/decimal"

// SeveranceInput describes a one-off severance payment on top of regular income.
type SeveranceInput struct {
	RegularIncome decimal.Decimal `yaml:"regular_income" json:"regular_income"`   // annual gross
	Severance     decimal.Decimal `yaml:"severance" json:"severance"`
	TaxClass      TaxClass        `yaml:"tax_class" json:"tax_class"`
	Children      int             `yaml:"children" json:"children"`
	ChurchRatePct decimal.Decimal `yaml:"church_rate_pct" json:"church_rate_pct"` // 0, 8 or 9
}

// SeveranceResult compares the one-fifth rule with plain taxation.
type SeveranceResult struct {
	Input SeveranceInput `json:"input"`

	TaxRegular             decimal.Decimal `json:"tax_regular"`
	TaxWithFifth           decimal.Decimal `json:"tax_with_fifth"`
	SmoothedTax            decimal.Decimal `json:"smoothed_tax"`
	UnsmoothedTax          decimal.Decimal `json:"unsmoothed_tax"`
	SmoothedTaxTotal       decimal.Decimal `json:"smoothed_tax_total"`       // with church surcharge
	UnsmoothedTaxTotal     decimal.Decimal `json:"unsmoothed_tax_total"`     // with church surcharge
	NetSeverance           decimal.Decimal `json:"net_severance"`
	NetSeveranceUnsmoothed decimal.Decimal `json:"net_severance_unsmoothed"`
	RawSaving              decimal.Decimal `json:"raw_saving"`
	TaxSaving              decimal.Decimal `json:"tax_saving"`               // RawSaving clamped at 0
	EffectiveRate          decimal.Decimal `json:"effective_rate"`           // percent of severance
	NetRegular             decimal.Decimal `json:"net_regular"`
	TotalAnnualNet         decimal.Decimal `json:"total_annual_net"`
}

// SeveranceEstimate is the customary rule of thumb: years × monthly gross × factor.
type SeveranceEstimate struct {
	Years        decimal.Decimal  `yaml:"years" json:"years"`
	MonthlyGross decimal.Decimal  `yaml:"monthly_gross" json:"monthly_gross"`
	Factor       *decimal.Decimal `yaml:"factor,omitempty" json:"factor,omitempty"`
}

// SeveranceEstimateResult holds the rule-of-thumb amount for an estimate request.
type SeveranceEstimateResult struct {
	Input  SeveranceEstimate `json:"input"`
	Amount decimal.Decimal   `json:"amount"`
}
