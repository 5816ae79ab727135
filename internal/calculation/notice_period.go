package calculation

import (
	"fmt"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/dateutil"
)

// NoticePeriodCalculator applies the statutory employee notice schedule (§622 BGB).
type NoticePeriodCalculator struct {
	Rules domain.NoticePeriodRules
}

// NewNoticePeriodCalculator creates a notice period calculator with configurable values
func NewNoticePeriodCalculator(rules domain.NoticePeriodRules) *NoticePeriodCalculator {
	return &NoticePeriodCalculator{Rules: rules}
}

// Calculate returns the notice period and the last working day for a notice given on the reference date.
func (c *NoticePeriodCalculator) Calculate(in domain.NoticePeriodProfile) (domain.NoticePeriodResult, error) {
	r := c.Rules
	if in.Start.IsZero() {
		return domain.NoticePeriodResult{}, inputError(ErrInvalidInput, "start", "date is required")
	}
	ref := in.Reference
	if ref.IsZero() {
		ref = today()
	}
	if ref.Before(in.Start) {
		return domain.NoticePeriodResult{}, inputError(ErrDateOrder, "reference", "%s is before start %s", ref, in.Start)
	}

	years, months, days := dateutil.Tenure(in.Start, ref)
	res := domain.NoticePeriodResult{
		Input:        in,
		Reference:    ref,
		TenureYears:  years,
		TenureMonths: months,
		TenureDays:   days,
	}

	switch {
	case years == 0 && months < r.ProbationMonths:
		res.Rule = domain.NoticeProbation
		res.PeriodDays = r.ProbationDays
		res.Label = fmt.Sprintf("%d Wochen (während Probezeit)", r.ProbationDays/7)
		res.EndDate = ref.AddDays(r.ProbationDays)
	case years < r.BasicYears:
		res.Rule = domain.NoticeBasic
		res.PeriodDays = r.BasicDays
		res.Label = fmt.Sprintf("%d Wochen zum %d. oder zum Monatsende", r.BasicDays/7, r.MidMonthDay)
		end := ref.AddDays(r.BasicDays)
		if end.Day() <= r.MidMonthDay {
			res.EndDate = dateutil.NewDate(end.Year(), end.Month(), r.MidMonthDay)
		} else {
			res.EndDate = end.EndOfMonth()
		}
	default:
		res.Rule = domain.NoticeExtended
		res.PeriodMonths = c.stepMonths(years)
		res.Label = monthsLabel(res.PeriodMonths) + " zum Monatsende"
		firstOfMonth := dateutil.NewDate(ref.Year(), ref.Month(), 1)
		res.EndDate = firstOfMonth.AddMonths(res.PeriodMonths).EndOfMonth()
	}
	return res, nil
}

// stepMonths returns the months of the highest step reached by the tenure.
func (c *NoticePeriodCalculator) stepMonths(years int) int {
	months := 0
	for _, s := range c.Rules.Steps {
		if years >= s.MinYears {
			months = s.Months
		}
	}
	return months
}

func monthsLabel(n int) string {
	if n == 1 {
		return "1 Monat"
	}
	return fmt.Sprintf("%d Monate", n)
}
