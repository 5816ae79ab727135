package rentlevel

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/domain"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "Exact name", query: "Leipzig", expected: []string{"Leipzig"}},
		{name: "Case insensitive", query: "BERLIN", expected: []string{"Berlin"}},
		{name: "Substring", query: "mün", expected: []string{"München", "Münster"}},
		{name: "Surrounding spaces", query: "  bonn ", expected: []string{"Bonn"}},
		{name: "No match", query: "Castrop-Rauxel", expected: []string{}},
		{name: "Empty query", query: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := lo.Map(Search(tt.query), func(c City, _ int) string { return c.Name })
			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestLevel(t *testing.T) {
	level, err := Level("münchen")
	require.NoError(t, err)
	assert.Equal(t, 7, level)

	level, err = Level("Frankfurt am Main")
	require.NoError(t, err)
	assert.Equal(t, 6, level)

	_, err = Level("Frankfurt")
	assert.ErrorIs(t, err, ErrUnknownCity, "partial names are not exact matches")
}

func TestCitiesAreValid(t *testing.T) {
	list := Cities()
	require.NotEmpty(t, list)
	for _, c := range list {
		assert.GreaterOrEqual(t, c.Level, 1, c.Name)
		assert.LessOrEqual(t, c.Level, 7, c.Name)
		assert.Len(t, c.State, 2, c.Name)
	}

	list[0].Level = 1
	again, err := Level(list[0].Name)
	require.NoError(t, err)
	assert.Equal(t, 7, again, "Cities returns a copy")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.HousingBenefitInput
		expectedLevel int
		expectedErr   error
	}{
		{name: "City fills the level", input: domain.HousingBenefitInput{City: "leipzig"}, expectedLevel: 2},
		{name: "Explicit level wins over the city", input: domain.HousingBenefitInput{City: "München", RentLevel: 3}, expectedLevel: 3},
		{name: "No city keeps the level", input: domain.HousingBenefitInput{RentLevel: 4}, expectedLevel: 4},
		{name: "Blank city is ignored", input: domain.HousingBenefitInput{City: "  "}, expectedLevel: 0},
		{name: "Unknown city", input: domain.HousingBenefitInput{City: "Atlantis"}, expectedErr: ErrUnknownCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, resolved.RentLevel)
			assert.Equal(t, tt.input.City, resolved.City)
		})
	}
}
