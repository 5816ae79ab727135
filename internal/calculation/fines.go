package calculation

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
)

// FineCalculator looks up speeding fines in the catalogue tables.
type FineCalculator struct {
	Rules domain.FineRules
}

// NewFineCalculator creates a speeding fine calculator with configurable values
func NewFineCalculator(rules domain.FineRules) *FineCalculator {
	return &FineCalculator{Rules: rules}
}

// Tolerance returns the measurement tolerance deducted from the driven speed.
func (c *FineCalculator) Tolerance(driven int) int {
	if driven < c.Rules.FlatToleranceBelow {
		return c.Rules.FlatTolerance
	}
	return int(decimal.NewFromInt(int64(driven)).Mul(c.Rules.ToleranceRate).Ceil().IntPart())
}

// Table returns the tier table for a location and vehicle class.
func (c *FineCalculator) Table(location domain.RoadLocation, vehicle domain.VehicleClass) []domain.FineTier {
	urban := location == domain.RoadUrban
	switch {
	case vehicle.Heavy() && urban:
		return c.Rules.UrbanHeavy
	case vehicle.Heavy():
		return c.Rules.RuralHeavy
	case urban:
		return c.Rules.UrbanLight
	default:
		return c.Rules.RuralLight
	}
}

// Calculate returns the fine for a speeding offence. Speeds above the maximum are capped.
func (c *FineCalculator) Calculate(in domain.SpeedingInput) (domain.SpeedingResult, error) {
	r := c.Rules
	if !in.Location.Valid() {
		return domain.SpeedingResult{}, inputError(ErrUnknownSelector, "location", "unknown location %q", in.Location)
	}
	if !in.Vehicle.Valid() {
		return domain.SpeedingResult{}, inputError(ErrUnknownSelector, "vehicle", "unknown vehicle class %q", in.Vehicle)
	}
	if in.Allowed <= 0 {
		return domain.SpeedingResult{}, inputError(ErrInvalidInput, "allowed", "must be positive, got %d", in.Allowed)
	}
	if in.Driven < 0 {
		return domain.SpeedingResult{}, inputError(ErrInvalidInput, "driven", "must not be negative, got %d", in.Driven)
	}

	allowed := min(in.Allowed, r.MaxSpeed)
	driven := min(in.Driven, r.MaxSpeed)
	res := domain.SpeedingResult{
		Input: in,
		Fine:  decimal.Zero,
		Fee:   decimal.Zero,
		Total: decimal.Zero,
		Ban:   domain.NoDrivingBan,
	}
	if driven <= allowed {
		return res, nil
	}

	res.Tolerance = c.Tolerance(driven)
	res.NetSpeed = driven - res.Tolerance
	res.Overage = max(0, res.NetSpeed-allowed)
	if res.Overage == 0 {
		return res, nil
	}
	res.Violation = true

	if tier, ok := lo.Find(c.Table(in.Location, in.Vehicle), func(t domain.FineTier) bool {
		return res.Overage >= t.Min && res.Overage <= t.Max
	}); ok {
		res.Fine = tier.Fine
		res.Points = tier.Points
		res.BanMonths = tier.BanMonths
		res.Ban = BanText(tier)
	}
	if !res.Fine.LessThan(r.FeeThreshold) {
		res.Fee = r.Fee
	}
	res.Total = res.Fine.Add(res.Fee)

	if in.Probation && res.Overage >= r.ProbationThreshold {
		res.Probation = &domain.ProbationMeasures{
			ExtensionYears:  r.ProbationExtensionYrs,
			SeminarRequired: true,
		}
	}
	return res, nil
}

// BanText renders a tier's driving ban, marking repeat-only bans with an asterisk.
func BanText(t domain.FineTier) string {
	var text string
	switch t.BanMonths {
	case 0:
		return domain.NoDrivingBan
	case 1:
		text = "1 Monat"
	default:
		text = fmt.Sprintf("%d Monate", t.BanMonths)
	}
	if t.BanOnRepeat {
		text += "*"
	}
	return text
}
