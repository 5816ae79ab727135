package domain

import "strings"

// TaxClass is the German wage-tax class (Steuerklasse) 1 to 6.
type TaxClass int

// Valid reports whether the class is within 1..6.
func (c TaxClass) Valid() bool { return c >= 1 && c <= 6 }

// Period states whether an amount is monthly or annual.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
)

// State is a federal state key such as "bayern" or "nordrhein-westfalen".
type State string

const (
	StateBadenWuerttemberg  State = "baden-wuerttemberg"
	StateBayern             State = "bayern"
	StateBerlin             State = "berlin"
	StateHamburg            State = "hamburg"
	StateHessen             State = "hessen"
	StateNordrheinWestfalen State = "nordrhein-westfalen"
	StateSachsen            State = "sachsen"
)

// Normalize lower-cases and trims the key.
func (s State) Normalize() State { return State(strings.ToLower(strings.TrimSpace(string(s)))) }

// FuelType selects the vehicle tax displacement rate.
type FuelType string

const (
	FuelPetrol   FuelType = "benzin"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "elektro"
)

// Valid reports whether the fuel type is known.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric:
		return true
	}
	return false
}

// CO2Mode selects how an era taxes emissions.
type CO2Mode string

const (
	CO2None        CO2Mode = "none"
	CO2Linear      CO2Mode = "linear"
	CO2Progressive CO2Mode = "progressive"
)

// HouseholdStatus distinguishes single parents from couples in the child supplement means test.
type HouseholdStatus string

const (
	HouseholdSingle HouseholdStatus = "single"
	HouseholdCouple HouseholdStatus = "couple"
)

// Valid reports whether the status is known.
func (s HouseholdStatus) Valid() bool { return s == HouseholdSingle || s == HouseholdCouple }

// RoadLocation selects the urban or rural fine table.
type RoadLocation string

const (
	RoadUrban RoadLocation = "innerorts"
	RoadRural RoadLocation = "ausserorts"
)

// Valid reports whether the location is known.
func (l RoadLocation) Valid() bool { return l == RoadUrban || l == RoadRural }

// VehicleClass selects the light or heavy fine tables.
type VehicleClass string

const (
	VehicleCar        VehicleClass = "pkw"
	VehicleMotorcycle VehicleClass = "motorrad"
	VehicleTruck      VehicleClass = "lkw"
	VehicleTrailer    VehicleClass = "gespann"
)

// Heavy reports whether the heavy-vehicle tables apply.
func (v VehicleClass) Heavy() bool { return v == VehicleTruck || v == VehicleTrailer }

// Valid reports whether the class is known.
func (v VehicleClass) Valid() bool {
	switch v {
	case VehicleCar, VehicleMotorcycle, VehicleTruck, VehicleTrailer:
		return true
	}
	return false
}
