package domain

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/pkg/dateutil"
)

// VehicleProfile is the vehicle tax request.
type VehicleProfile struct {
	Displacement      int           `yaml:"displacement" json:"displacement"`             // cm³
	CO2               int           `yaml:"co2" json:"co2"`                               // g/km
	Fuel              FuelType      `yaml:"fuel" json:"fuel"`
	FirstRegistration dateutil.Date `yaml:"first_registration" json:"first_registration"`
}

// CO2Share is one line of the emission tax breakdown.
type CO2Share struct {
	From   int             `json:"from"`   // first gram in this line
	To     int             `json:"to"`     // last gram in this line
	Grams  int             `json:"grams"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// VehicleTaxResult holds the annual tax split into its two parts.
type VehicleTaxResult struct {
	Input VehicleProfile `json:"input"`

	Era               string          `json:"era"`
	DisplacementUnits int             `json:"displacement_units"`
	DisplacementRate  decimal.Decimal `json:"displacement_rate"`
	DisplacementTax   decimal.Decimal `json:"displacement_tax"`
	CO2Allowance      int             `json:"co2_allowance"`
	CO2OverAllowance  int             `json:"co2_over_allowance"`
	CO2Tax            decimal.Decimal `json:"co2_tax"`
	AnnualTax         decimal.Decimal `json:"annual_tax"`
	MonthlyTax        decimal.Decimal `json:"monthly_tax"`
	Breakdown         []CO2Share      `json:"breakdown"`
	Exempt            bool            `json:"exempt"`
	ExemptUntil       dateutil.Date   `json:"exempt_until,omitempty"`
}
