package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestTenure tests the year/month/day difference with borrowing
func TestTenure(t *testing.T) {
	tests := []struct {
		name           string
		start          Date
		ref            Date
		expectedYears  int
		expectedMonths int
		expectedDays   int
		description    string
	}{
		{
			name:           "Same day",
			start:          NewDate(2020, 3, 15),
			ref:            NewDate(2020, 3, 15),
			expectedYears:  0,
			expectedMonths: 0,
			expectedDays:   0,
			description:    "No tenure on the first day",
		},
		{
			name:           "Exact years",
			start:          NewDate(2010, 1, 1),
			ref:            NewDate(2024, 1, 1),
			expectedYears:  14,
			expectedMonths: 0,
			expectedDays:   0,
			description:    "Full years only",
		},
		{
			name:           "Month borrow",
			start:          NewDate(2020, 5, 20),
			ref:            NewDate(2021, 3, 10),
			expectedYears:  0,
			expectedMonths: 9,
			expectedDays:   18,
			description:    "Negative days borrow February (28 days)",
		},
		{
			name:           "Day before anniversary",
			start:          NewDate(2019, 7, 1),
			ref:            NewDate(2021, 6, 30),
			expectedYears:  1,
			expectedMonths: 11,
			expectedDays:   29,
			description:    "Still below two years",
		},
		{
			name:           "Borrow into short month",
			start:          NewDate(2024, 1, 31),
			ref:            NewDate(2024, 3, 1),
			expectedYears:  0,
			expectedMonths: 1,
			expectedDays:   0,
			description:    "Start day missing in February",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d := Tenure(tt.start, tt.ref)
			assert.Equal(t, tt.expectedYears, y, tt.description)
			assert.Equal(t, tt.expectedMonths, m, tt.description)
			assert.Equal(t, tt.expectedDays, d, tt.description)
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in   Date
		want Date
	}{
		{NewDate(2024, 2, 10), NewDate(2024, 2, 29)},
		{NewDate(2023, 2, 1), NewDate(2023, 2, 28)},
		{NewDate(2024, 12, 31), NewDate(2024, 12, 31)},
		{NewDate(2024, 4, 1), NewDate(2024, 4, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.EndOfMonth())
		})
	}
}

func TestAddMonthsNormalizes(t *testing.T) {
	assert.Equal(t, NewDate(2023, 3, 3), NewDate(2023, 1, 31).AddMonths(1))
	assert.Equal(t, NewDate(2024, 7, 15), NewDate(2024, 1, 15).AddMonths(6))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2020, time.January, 1), d)

	d, err = ParseDate("2020-01-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2020, time.January, 1), d)

	_, err = ParseDate("01.01.2020")
	assert.Error(t, err)
}

func TestDateTextRoundTrip(t *testing.T) {
	var holder struct {
		Start Date `yaml:"start"`
		Empty Date `yaml:"empty"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("start: 2014-01-01\nempty: \"\"\n"), &holder))
	assert.Equal(t, NewDate(2014, 1, 1), holder.Start)
	assert.True(t, holder.Empty.IsZero())

	text, err := holder.Start.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2014-01-01", string(text))
	assert.Equal(t, "01.01.2014", holder.Start.German())

	err = yaml.Unmarshal([]byte("start: gestern\n"), &holder)
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
}
