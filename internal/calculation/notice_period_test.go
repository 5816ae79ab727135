package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/dateutil"
)

func TestNoticePeriod(t *testing.T) {
	calculator := NewNoticePeriodCalculator(domain.DefaultRules().NoticePeriod)

	tests := []struct {
		name          string
		start         string
		reference     string
		expectedRule  domain.NoticeRule
		expectedLabel string
		expectedEnd   string
		description   string
	}{
		{
			name:          "During probation",
			start:         "2024-01-01",
			reference:     "2024-03-10",
			expectedRule:  domain.NoticeProbation,
			expectedLabel: "2 Wochen (während Probezeit)",
			expectedEnd:   "2024-03-24",
			description:   "Two weeks to any day",
		},
		{
			name:          "Last probation day",
			start:         "2024-01-01",
			reference:     "2024-06-30",
			expectedRule:  domain.NoticeProbation,
			expectedLabel: "2 Wochen (während Probezeit)",
			expectedEnd:   "2024-07-14",
			description:   "Five months and 29 days is still probation",
		},
		{
			name:          "Six months completed",
			start:         "2024-01-01",
			reference:     "2024-07-01",
			expectedRule:  domain.NoticeBasic,
			expectedLabel: "4 Wochen zum 15. oder zum Monatsende",
			expectedEnd:   "2024-07-31",
			description:   "28 days lands on the 29th, rounded to month end",
		},
		{
			name:          "Basic period to the 15th",
			start:         "2023-01-01",
			reference:     "2024-03-10",
			expectedRule:  domain.NoticeBasic,
			expectedLabel: "4 Wochen zum 15. oder zum Monatsende",
			expectedEnd:   "2024-04-15",
			description:   "28 days lands on April 7th",
		},
		{
			name:          "Basic period to month end",
			start:         "2023-01-01",
			reference:     "2024-03-20",
			expectedRule:  domain.NoticeBasic,
			expectedLabel: "4 Wochen zum 15. oder zum Monatsende",
			expectedEnd:   "2024-04-30",
			description:   "28 days lands on April 17th",
		},
		{
			name:          "Between two and five years",
			start:         "2020-01-01",
			reference:     "2023-01-31",
			expectedRule:  domain.NoticeExtended,
			expectedLabel: "1 Monat zum Monatsende",
			expectedEnd:   "2023-02-28",
			description:   "No day overflow from January 31st",
		},
		{
			name:          "Fourteen years",
			start:         "2010-01-01",
			reference:     "2024-06-01",
			expectedRule:  domain.NoticeExtended,
			expectedLabel: "5 Monate zum Monatsende",
			expectedEnd:   "2024-11-30",
			description:   "Twelve-year step",
		},
		{
			name:          "Fifteen years",
			start:         "2010-01-01",
			reference:     "2025-03-10",
			expectedRule:  domain.NoticeExtended,
			expectedLabel: "6 Monate zum Monatsende",
			expectedEnd:   "2025-09-30",
			description:   "Fifteen-year step follows the table",
		},
		{
			name:          "Twenty five years",
			start:         "1999-04-01",
			reference:     "2024-04-15",
			expectedRule:  domain.NoticeExtended,
			expectedLabel: "7 Monate zum Monatsende",
			expectedEnd:   "2024-11-30",
			description:   "Top step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.Calculate(domain.NoticePeriodProfile{
				Start:     dateutil.MustParseDate(tt.start),
				Reference: dateutil.MustParseDate(tt.reference),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRule, result.Rule, tt.description)
			assert.Equal(t, tt.expectedLabel, result.Label, tt.description)
			assert.Equal(t, tt.expectedEnd, result.EndDate.String(), tt.description)
		})
	}
}

func TestNoticePeriodTenure(t *testing.T) {
	calculator := NewNoticePeriodCalculator(domain.DefaultRules().NoticePeriod)

	result, err := calculator.Calculate(domain.NoticePeriodProfile{
		Start:     dateutil.MustParseDate("2010-01-01"),
		Reference: dateutil.MustParseDate("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 14, result.TenureYears)
	assert.Equal(t, 5, result.TenureMonths)
	assert.Equal(t, 0, result.TenureDays)
	assert.Equal(t, 5, result.PeriodMonths)
	assert.Equal(t, 0, result.PeriodDays)
}

func TestNoticePeriodDefaultsToToday(t *testing.T) {
	withNow(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC))
	calculator := NewNoticePeriodCalculator(domain.DefaultRules().NoticePeriod)

	result, err := calculator.Calculate(domain.NoticePeriodProfile{Start: dateutil.MustParseDate("2010-01-01")})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", result.Reference.String())
	assert.Equal(t, "2024-11-30", result.EndDate.String())
}

func TestNoticePeriodValidation(t *testing.T) {
	calculator := NewNoticePeriodCalculator(domain.DefaultRules().NoticePeriod)

	_, err := calculator.Calculate(domain.NoticePeriodProfile{
		Start:     dateutil.MustParseDate("2024-06-01"),
		Reference: dateutil.MustParseDate("2024-05-31"),
	})
	assert.ErrorIs(t, err, ErrDateOrder)

	_, err = calculator.Calculate(domain.NoticePeriodProfile{Reference: dateutil.MustParseDate("2024-05-31")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
