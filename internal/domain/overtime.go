package domain

import "github.com/shopspring/decimal"

// OvertimeInput is the overtime pay request.
type OvertimeInput struct {
	MonthlyGross  decimal.Decimal  `yaml:"monthly_gross" json:"monthly_gross"`
	WeeklyHours   decimal.Decimal  `yaml:"weekly_hours" json:"weekly_hours"`
	OvertimeHours decimal.Decimal  `yaml:"overtime_hours" json:"overtime_hours"`
	SurchargePct  decimal.Decimal  `yaml:"surcharge_pct" json:"surcharge_pct"`
	TaxRatePct    *decimal.Decimal `yaml:"tax_rate_pct,omitempty" json:"tax_rate_pct,omitempty"` // Default: 35
}

// OvertimeResult holds pay and time-off equivalents for the overtime hours.
type OvertimeResult struct {
	Input OvertimeInput `json:"input"`

	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	BasePay      decimal.Decimal `json:"base_pay"`
	SurchargePay decimal.Decimal `json:"surcharge_pay"`
	TotalGross   decimal.Decimal `json:"total_gross"`
	TaxFree      decimal.Decimal `json:"tax_free"`
	Taxable      decimal.Decimal `json:"taxable"`
	TaxRatePct   decimal.Decimal `json:"tax_rate_pct"`
	Net          decimal.Decimal `json:"net"`
	TimeOffBase  decimal.Decimal `json:"time_off_base"`  // hours
	TimeOffTotal decimal.Decimal `json:"time_off_total"` // hours including surcharge
}
