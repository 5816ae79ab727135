package domain

import "github.com/shopspring/decimal"

// NoDrivingBan is the ban text when a tier carries no ban.
const NoDrivingBan = "Kein Fahrverbot"

// SpeedingInput is the speeding fine request. Speeds are km/h.
type SpeedingInput struct {
	Location  RoadLocation `yaml:"location" json:"location"`
	Vehicle   VehicleClass `yaml:"vehicle" json:"vehicle"`
	Probation bool         `yaml:"probation" json:"probation"`
	Allowed   int          `yaml:"allowed" json:"allowed"`
	Driven    int          `yaml:"driven" json:"driven"`
}

// ProbationMeasures are the consequences for a novice driver.
type ProbationMeasures struct {
	ExtensionYears  int  `json:"extension_years"`
	SeminarRequired bool `json:"seminar_required"`
}

// SpeedingResult holds the fine lookup. Violation is false when nothing is owed.
type SpeedingResult struct {
	Input SpeedingInput `json:"input"`

	Violation bool               `json:"violation"`
	Tolerance int                `json:"tolerance"`
	NetSpeed  int                `json:"net_speed"`
	Overage   int                `json:"overage"`
	Fine      decimal.Decimal    `json:"fine"`
	Fee       decimal.Decimal    `json:"fee"`
	Total     decimal.Decimal    `json:"total"`
	Points    int                `json:"points"`
	BanMonths int                `json:"ban_months"`
	Ban       string             `json:"ban"`
	Probation *ProbationMeasures `json:"probation,omitempty"`
}
