package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/domain"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// rentLevels is the number of Mietstufen per household size.
const rentLevels = 7

// InputParser handles parsing of rules files and calculation requests
type InputParser struct {
	Stdin io.Reader
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Stdin: os.Stdin}
}

// LoadRules loads rule overrides from a YAML file on top of the built-in defaults.
// An empty path returns the defaults.
func (ip *InputParser) LoadRules(filename string) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if filename == "" {
		return rules, nil
	}

	data, err := ip.read(filename)
	if err != nil {
		return domain.Rules{}, err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.Rules{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRules(rules); err != nil {
		return domain.Rules{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// LoadRequest decodes a calculation request into v. Files ending in .json, and input
// starting with '{', are decoded as JSON; everything else as YAML.
func (ip *InputParser) LoadRequest(filename string, v any) error {
	data, err := ip.read(filename)
	if err != nil {
		return err
	}
	return DecodeRequest(data, strings.EqualFold(filepath.Ext(filename), ".json"), v)
}

// DecodeRequest decodes request bytes as JSON or YAML.
func DecodeRequest(data []byte, asJSON bool, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty request")
	}
	if asJSON || trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (ip *InputParser) read(filename string) ([]byte, error) {
	if filename == StdinPath {
		in := ip.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return data, nil
}

// ValidateRules validates a rules bundle
func (ip *InputParser) ValidateRules(rules domain.Rules) error {
	if err := calculation.ValidateZones(rules.IncomeTax.Zones); err != nil {
		return fmt.Errorf("income tax zones: %w", err)
	}
	if !rules.Payroll.WeeksPerMonth.IsPositive() {
		return fmt.Errorf("payroll weeks per month must be positive")
	}
	if rules.Severance.SpreadYears < 1 {
		return fmt.Errorf("severance spread years must be at least 1")
	}
	if err := ip.validateVehicleTax(rules.VehicleTax); err != nil {
		return fmt.Errorf("vehicle tax: %w", err)
	}
	if err := ip.validateHousingBenefit(rules.HousingBenefit); err != nil {
		return fmt.Errorf("housing benefit: %w", err)
	}
	if !rules.ParentalAllowance.RateStepIncome.IsPositive() {
		return fmt.Errorf("parental allowance rate step income must be positive")
	}
	if rules.ParentalAllowance.Minimum.GreaterThan(rules.ParentalAllowance.Maximum) {
		return fmt.Errorf("parental allowance minimum exceeds maximum")
	}
	if !rules.Overtime.WeeksPerMonth.IsPositive() {
		return fmt.Errorf("overtime weeks per month must be positive")
	}
	if err := ip.validateFines(rules.Fines); err != nil {
		return fmt.Errorf("fines: %w", err)
	}
	if err := ip.validateNoticePeriod(rules.NoticePeriod); err != nil {
		return fmt.Errorf("notice period: %w", err)
	}
	return nil
}

func (ip *InputParser) validateVehicleTax(rules domain.VehicleTaxRules) error {
	if len(rules.Eras) == 0 {
		return fmt.Errorf("no eras defined")
	}
	if !rules.DisplacementUnit.IsPositive() {
		return fmt.Errorf("displacement unit must be positive")
	}
	for i, era := range rules.Eras {
		if i > 0 && !era.From.After(rules.Eras[i-1].From) {
			return fmt.Errorf("era %s: start date must follow era %s", era.Name, rules.Eras[i-1].Name)
		}
		if era.CO2Mode == domain.CO2Progressive {
			if err := calculation.ValidateBands(era.CO2Allowance, era.CO2Bands); err != nil {
				return fmt.Errorf("era %s: %w", era.Name, err)
			}
		}
	}
	return nil
}

func (ip *InputParser) validateHousingBenefit(rules domain.HousingBenefitRules) error {
	n := rules.MaxHouseholdSize
	if n < 1 {
		return fmt.Errorf("max household size must be at least 1")
	}
	if len(rules.RentLimits) != n || len(rules.Heating) != n || len(rules.Climate) != n || len(rules.Coefficients) != n {
		return fmt.Errorf("tables must have %d rows (rent %d, heating %d, climate %d, coefficients %d)",
			n, len(rules.RentLimits), len(rules.Heating), len(rules.Climate), len(rules.Coefficients))
	}
	for i, row := range rules.RentLimits {
		if len(row) != rentLevels {
			return fmt.Errorf("rent limits for %d persons: expected %d levels, got %d", i+1, rentLevels, len(row))
		}
	}
	return nil
}

func (ip *InputParser) validateFines(rules domain.FineRules) error {
	if rules.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive")
	}
	tables := map[string][]domain.FineTier{
		"urban_light": rules.UrbanLight,
		"rural_light": rules.RuralLight,
		"urban_heavy": rules.UrbanHeavy,
		"rural_heavy": rules.RuralHeavy,
	}
	for name, tiers := range tables {
		if len(tiers) == 0 {
			return fmt.Errorf("table %s is empty", name)
		}
		for i, tier := range tiers {
			if tier.Min > tier.Max {
				return fmt.Errorf("table %s tier %d: min %d above max %d", name, i, tier.Min, tier.Max)
			}
			if i > 0 && tier.Min <= tiers[i-1].Max {
				return fmt.Errorf("table %s tier %d overlaps the previous tier", name, i)
			}
		}
	}
	return nil
}

func (ip *InputParser) validateNoticePeriod(rules domain.NoticePeriodRules) error {
	if len(rules.Steps) == 0 {
		return fmt.Errorf("no notice steps defined")
	}
	for i, step := range rules.Steps {
		if i > 0 && step.MinYears <= rules.Steps[i-1].MinYears {
			return fmt.Errorf("step %d: tenure thresholds must increase", i)
		}
		if step.Months < 1 {
			return fmt.Errorf("step %d: months must be positive", i)
		}
	}
	if rules.MidMonthDay < 1 || rules.MidMonthDay > 28 {
		return fmt.Errorf("mid-month day must be between 1 and 28")
	}
	return nil
}

// WriteRules writes a rules bundle as YAML, the same shape LoadRules reads.
func (ip *InputParser) WriteRules(w io.Writer, rules domain.Rules) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rules); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}
