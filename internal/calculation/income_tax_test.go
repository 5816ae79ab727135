package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// TestBaseTaxZones checks the 2026 tariff in each zone
func TestBaseTaxZones(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	tests := []struct {
		name        string
		income      string
		expectedTax string
		description string
	}{
		{
			name:        "Zero income",
			income:      "0",
			expectedTax: "0",
			description: "No income, no tax",
		},
		{
			name:        "Basic allowance",
			income:      "12348",
			expectedTax: "0",
			description: "Income at the basic allowance is untaxed",
		},
		{
			name:        "Entry zone",
			income:      "15000",
			expectedTax: "435",
			description: "(914.51*0.2652 + 1400)*0.2652, floored",
		},
		{
			name:        "Upper bound of entry zone",
			income:      "17799",
			expectedTax: "1034",
			description: "Continuity with the second zone constant",
		},
		{
			name:        "Progression zone",
			income:      "30000",
			expectedTax: "4217",
			description: "Second polynomial zone",
		},
		{
			name:        "Progression zone upper range",
			income:      "50000",
			expectedTax: "10548",
			description: "Second polynomial zone near the top",
		},
		{
			name:        "Proportional zone",
			income:      "80000",
			expectedTax: "22464",
			description: "0.42*x - 11135.63",
		},
		{
			name:        "Top rate zone",
			income:      "300000",
			expectedTax: "115529",
			description: "0.45*x - 19470.38",
		},
		{
			name:        "Fractional income floored first",
			income:      "15000.99",
			expectedTax: "435",
			description: "Income is floored to whole euros before evaluation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculator.BaseTax(dec(tt.income))
			assert.True(t, dec(tt.expectedTax).Equal(result),
				"BaseTax(%s) = %s, expected %s (%s)", tt.income, result, tt.expectedTax, tt.description)
		})
	}
}

func TestTariffJustAboveAllowance(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	raw := calculator.Tariff(dec("12349"))
	assert.True(t, raw.IsPositive(), "raw tariff one euro above the allowance should be positive, got %s", raw)
	assert.True(t, calculator.BaseTax(dec("12349")).IsZero(), "floored tax one euro above the allowance is still zero")
	assert.True(t, calculator.BaseTax(dec("12357")).Equal(dec("1")))
}

func TestBaseTaxMonotonic(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	previous := decimal.Zero
	for income := int64(0); income <= 320000; income += 250 {
		tax := calculator.BaseTax(decimal.NewFromInt(income))
		require.False(t, tax.LessThan(previous), "tax decreased at %d: %s < %s", income, tax, previous)
		require.False(t, tax.IsNegative())
		previous = tax
	}
}

func TestAnnualTaxByClass(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	tests := []struct {
		name        string
		class       domain.TaxClass
		expectedTax string
		description string
	}{
		{name: "Class 1", class: 1, expectedTax: "7209", description: "Plain tariff"},
		{name: "Class 2", class: 2, expectedTax: "5892", description: "Tariff on income less the single-parent relief"},
		{name: "Class 3", class: 3, expectedTax: "3140", description: "Splitting: twice the tax on half"},
		{name: "Class 4", class: 4, expectedTax: "7209", description: "Same as class 1"},
		{name: "Class 5", class: 5, expectedTax: "9011", description: "Class 1 tax times 1.25, floored"},
		{name: "Class 6", class: 6, expectedTax: "11382", description: "Tariff without the basic allowance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.AnnualTax(dec("40000"), tt.class, 1)
			require.NoError(t, err)
			assert.True(t, dec(tt.expectedTax).Equal(result),
				"class %d: got %s, expected %s (%s)", tt.class, result, tt.expectedTax, tt.description)
		})
	}
}

func TestAnnualTaxSplittingNeverExceedsSingle(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	for _, income := range []string{"20000", "45000", "90000", "250000"} {
		single, err := calculator.AnnualTax(dec(income), 1, 0)
		require.NoError(t, err)
		married, err := calculator.AnnualTax(dec(income), 3, 0)
		require.NoError(t, err)
		assert.True(t, married.LessThanOrEqual(single), "income %s: class 3 %s > class 1 %s", income, married, single)
	}
}

func TestClass6WithoutAllowance(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	tests := []struct {
		name        string
		income      string
		expectedTax string
	}{
		{name: "Below the allowance is still taxed", income: "3000", expectedTax: "502"},
		{name: "Entry polynomial at 20000", income: "20000", expectedTax: "6458"},
		{name: "Entry polynomial at 30000", income: "30000", expectedTax: "12430"},
		{name: "Entry polynomial at 50000", income: "50000", expectedTax: "29862"},
		{name: "Minimum rate wins for tiny incomes", income: "100", expectedTax: "14"},
		{name: "Zero income", income: "0", expectedTax: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, err := calculator.AnnualTax(dec(tt.income), 6, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTax, tax.String())
		})
	}
}

func TestClass6NeverBelowClass1(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	for _, income := range []string{"3000", "20000", "80000", "400000"} {
		class6, err := calculator.AnnualTax(dec(income), 6, 0)
		require.NoError(t, err)
		class1, err := calculator.AnnualTax(dec(income), 1, 0)
		require.NoError(t, err)
		assert.True(t, class6.GreaterThanOrEqual(class1), "income %s", income)
	}
}

func TestAnnualTaxRejectsInvalidClass(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	for _, class := range []domain.TaxClass{0, 7, -1} {
		_, err := calculator.AnnualTax(dec("40000"), class, 0)
		assert.ErrorIs(t, err, ErrInvalidTaxClass)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "tax_class", inputErr.Field)
	}
}

func TestAnnualTaxNegativeIncome(t *testing.T) {
	calculator := NewIncomeTaxCalculator2026()

	result, err := calculator.AnnualTax(dec("-5000"), 1, 0)
	require.NoError(t, err)
	assert.True(t, result.IsZero())
}
