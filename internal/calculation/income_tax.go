package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

// IncomeTaxCalculator evaluates the §32a tariff and the wage-tax class adjustments.
type IncomeTaxCalculator struct {
	Rules domain.IncomeTaxRules
}

// NewIncomeTaxCalculator2026 creates an income tax calculator with the 2026 tariff
func NewIncomeTaxCalculator2026() *IncomeTaxCalculator {
	return NewIncomeTaxCalculator(domain.DefaultRules().IncomeTax)
}

// NewIncomeTaxCalculator creates an income tax calculator with configurable values
func NewIncomeTaxCalculator(rules domain.IncomeTaxRules) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{Rules: rules}
}

// Tariff returns the unrounded tariff for income floored to whole euros.
func (c *IncomeTaxCalculator) Tariff(income decimal.Decimal) decimal.Decimal {
	x := income.Floor()
	if !x.IsPositive() {
		return decimal.Zero
	}
	return money.NonNegative(EvaluateZones(x, c.Rules.Zones))
}

// BaseTax is the tariff floored to whole euros.
func (c *IncomeTaxCalculator) BaseTax(income decimal.Decimal) decimal.Decimal {
	return c.Tariff(income).Floor()
}

// AnnualTax applies the class adjustment and returns the annual tax in whole euros.
//
//	1, 4  plain tariff
//	2     single-parent relief subtracted first
//	3     splitting: twice the tax on half the income
//	5     tariff times the class 5 factor
//	6     no basic allowance; the larger of the entry polynomial from zero and a flat minimum rate
func (c *IncomeTaxCalculator) AnnualTax(income decimal.Decimal, class domain.TaxClass, children int) (decimal.Decimal, error) {
	if !class.Valid() {
		return decimal.Zero, inputError(ErrInvalidTaxClass, "tax_class", "must be between 1 and 6, got %d", class)
	}
	income = money.NonNegative(income)

	var tax decimal.Decimal
	switch class {
	case 2:
		extraChildren := decimal.NewFromInt(int64(max(0, children-1)))
		relief := c.Rules.SingleParentRelief.Add(c.Rules.SingleParentReliefPerChild.Mul(extraChildren))
		tax = c.BaseTax(money.NonNegative(income.Sub(relief)))
	case 3:
		tax = c.BaseTax(income.Div(two)).Mul(two)
	case 5:
		tax = c.BaseTax(income).Mul(c.Rules.Class5Factor)
	case 6:
		tax = c.class6(income)
	default:
		tax = c.BaseTax(income)
	}
	return money.NonNegative(tax).Floor(), nil
}

// class6 is the larger of the entry polynomial evaluated from zero and the minimum rate.
// The polynomial is not capped, so for high incomes it exceeds the regular tariff.
func (c *IncomeTaxCalculator) class6(income decimal.Decimal) decimal.Decimal {
	tax := income.Mul(c.Rules.Class6MinimumRate)
	for _, z := range c.Rules.Zones {
		if z.Quadratic.IsZero() && z.Linear.IsZero() {
			continue
		}
		entry := z
		entry.Origin = decimal.Zero
		entry.Constant = decimal.Zero
		tax = decimal.Max(evaluateZone(entry, income), tax)
		break
	}
	return tax
}
