package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// StepShare is the part of a value that fell into one band.
type StepShare struct {
	From   decimal.Decimal // exclusive lower edge
	To     decimal.Decimal // inclusive upper edge
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Width is To - From.
func (s StepShare) Width() decimal.Decimal { return s.To.Sub(s.From) }

// StepResult is the outcome of a progressive stepped evaluation.
type StepResult struct {
	Total  decimal.Decimal
	Shares []StepShare
}

// ProgressiveStep applies each band's rate to the portion of value between the previous
// band's upper bound (base for the first band) and this band's upper bound.
// Values at or below base yield zero. Nothing is rounded.
func ProgressiveStep(value, base decimal.Decimal, bands []domain.StepBand) StepResult {
	res := StepResult{Total: decimal.Zero}
	lower := base
	for _, band := range bands {
		if value.LessThanOrEqual(lower) {
			break
		}
		upper := value
		if band.UpperBound != nil && band.UpperBound.LessThan(value) {
			upper = *band.UpperBound
		}
		if upper.GreaterThan(lower) {
			amount := upper.Sub(lower).Mul(band.Rate)
			res.Shares = append(res.Shares, StepShare{From: lower, To: upper, Rate: band.Rate, Amount: amount})
			res.Total = res.Total.Add(amount)
		}
		if band.UpperBound == nil {
			break
		}
		lower = decimal.Max(lower, *band.UpperBound)
	}
	return res
}

// EvaluateZones returns the unrounded value of the first zone whose inclusive upper bound
// contains x. The last zone covers everything above.
func EvaluateZones(x decimal.Decimal, zones []domain.PolynomialZone) decimal.Decimal {
	if len(zones) == 0 {
		return decimal.Zero
	}
	zone := zones[len(zones)-1]
	for _, z := range zones {
		if z.UpperBound == nil || x.LessThanOrEqual(*z.UpperBound) {
			zone = z
			break
		}
	}
	return evaluateZone(zone, x)
}

func evaluateZone(z domain.PolynomialZone, x decimal.Decimal) decimal.Decimal {
	scale := z.Scale
	if scale.IsZero() {
		scale = one
	}
	y := x.Sub(z.Origin).Div(scale)
	return z.Quadratic.Mul(y).Add(z.Linear).Mul(y).Add(z.Constant)
}

// ValidateZones checks that zone upper bounds strictly increase and only the last is unbounded.
func ValidateZones(zones []domain.PolynomialZone) error {
	bounds := make([]*decimal.Decimal, len(zones))
	for i, z := range zones {
		bounds[i] = z.UpperBound
	}
	return validateBounds(bounds)
}

// ValidateBands checks that band upper bounds strictly increase, start above base,
// and only the last band is unbounded.
func ValidateBands(base decimal.Decimal, bands []domain.StepBand) error {
	bounds := make([]*decimal.Decimal, len(bands))
	for i, b := range bands {
		if b.Rate.IsNegative() {
			return fmt.Errorf("band %d: negative rate %s", i, b.Rate)
		}
		bounds[i] = b.UpperBound
	}
	if len(bands) > 0 && bands[0].UpperBound != nil && !bands[0].UpperBound.GreaterThan(base) {
		return fmt.Errorf("band 0: upper bound %s not above base %s", bands[0].UpperBound, base)
	}
	return validateBounds(bounds)
}

func validateBounds(bounds []*decimal.Decimal) error {
	if len(bounds) == 0 {
		return fmt.Errorf("no bands defined")
	}
	for i, b := range bounds {
		last := i == len(bounds)-1
		if b == nil {
			if !last {
				return fmt.Errorf("band %d: only the last band may be unbounded", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("band %d: last band must be unbounded", i)
		}
		if i > 0 && !b.GreaterThan(*bounds[i-1]) {
			return fmt.Errorf("band %d: upper bound %s does not increase", i, b)
		}
	}
	return nil
}
