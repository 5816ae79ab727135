package output

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/pkg/money"
)

// FormatCurrency formats a decimal as euro amount with 2 decimals, German style.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatEUR(amount) }

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return money.FormatPercent(amount) }

// FormatNumber formats a plain number with German separators.
func FormatNumber(amount decimal.Decimal, places int32) string {
	return money.FormatNumber(amount, places)
}
