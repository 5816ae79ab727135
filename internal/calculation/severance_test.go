package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/domain"
)

func TestSeveranceFifthRule(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	result, err := calculator.Calculate(domain.SeveranceInput{
		RegularIncome: dec("50000"),
		Severance:     dec("20000"),
		TaxClass:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, "10548", result.TaxRegular.String())
	assert.Equal(t, "11980", result.TaxWithFifth.String())
	assert.Equal(t, "7160", result.SmoothedTax.String(), "(11980 - 10548) * 5")
	assert.Equal(t, "7716", result.UnsmoothedTax.String())
	assert.Equal(t, "12840.00", result.NetSeverance.StringFixed(2))
	assert.Equal(t, "12284.00", result.NetSeveranceUnsmoothed.StringFixed(2))
	assert.Equal(t, "556.00", result.TaxSaving.StringFixed(2))
	assert.Equal(t, "35.80", result.EffectiveRate.StringFixed(2))
	assert.Equal(t, "39452.00", result.NetRegular.StringFixed(2))
	assert.Equal(t, "52292.00", result.TotalAnnualNet.StringFixed(2))
}

func TestSeveranceChurchSurcharge(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	tests := []struct {
		name          string
		churchPct     string
		expectedTotal string
		description   string
	}{
		{name: "No church tax", churchPct: "0", expectedTotal: "7160.00", description: "Smoothed tax only"},
		{name: "Nine percent", churchPct: "9", expectedTotal: "7804.40", description: "7160 * 1.09"},
		{name: "Clamped above nine", churchPct: "12", expectedTotal: "7804.40", description: "Rate clamped to 9"},
		{name: "Negative clamped to zero", churchPct: "-3", expectedTotal: "7160.00", description: "Rate clamped to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.Calculate(domain.SeveranceInput{
				RegularIncome: dec("50000"),
				Severance:     dec("20000"),
				TaxClass:      1,
				ChurchRatePct: dec(tt.churchPct),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, result.SmoothedTaxTotal.StringFixed(2), tt.description)
		})
	}
}

func TestSeveranceSmoothingNeverCostsMore(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	for _, regular := range []string{"0", "15000", "40000", "90000", "300000"} {
		for _, severance := range []string{"5000", "30000", "120000"} {
			for class := domain.TaxClass(1); class <= 6; class++ {
				result, err := calculator.Calculate(domain.SeveranceInput{
					RegularIncome: dec(regular), Severance: dec(severance), TaxClass: class,
				})
				require.NoError(t, err)
				assert.False(t, result.TaxSaving.IsNegative())
				assert.True(t, result.SmoothedTax.LessThanOrEqual(result.UnsmoothedTax.Add(dec("15"))),
					"regular %s severance %s class %d", regular, severance, class)
			}
		}
	}
}

func TestSeveranceZeroPayment(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	result, err := calculator.Calculate(domain.SeveranceInput{RegularIncome: dec("40000"), TaxClass: 1})
	require.NoError(t, err)
	assert.True(t, result.SmoothedTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.True(t, result.NetSeverance.IsZero())
}

func TestSeveranceInvalidClass(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	_, err := calculator.Calculate(domain.SeveranceInput{RegularIncome: dec("40000"), Severance: dec("1000"), TaxClass: 9})
	assert.ErrorIs(t, err, ErrInvalidTaxClass)
}

func TestSeveranceEstimate(t *testing.T) {
	calculator := NewSeveranceCalculator(domain.DefaultRules(), nil)

	tests := []struct {
		name     string
		input    domain.SeveranceEstimate
		expected string
	}{
		{name: "Half a month per year", input: domain.SeveranceEstimate{Years: dec("10"), MonthlyGross: dec("4000")}, expected: "20000"},
		{name: "Custom factor", input: domain.SeveranceEstimate{Years: dec("8"), MonthlyGross: dec("3500"), Factor: decPtr("1")}, expected: "28000"},
		{name: "Fractional years rounded", input: domain.SeveranceEstimate{Years: dec("2.5"), MonthlyGross: dec("3333")}, expected: "4166"},
		{name: "Zero years", input: domain.SeveranceEstimate{Years: dec("0"), MonthlyGross: dec("4000")}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculator.Estimate(tt.input).String())
		})
	}
}
