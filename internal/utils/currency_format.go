package utils

import (
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every monetary value on rendered documents.
const CurrencySymbol = "$"

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders an amount for display: currency prefix and exactly two decimals.
// Example: 669.6 returns "$669.60"
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + FormatWithPrecision(amount, 2)
}
