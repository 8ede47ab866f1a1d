package domain

import (
	"fmt"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived financial fields of an invoice.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineAmount returns quantity * rate. Negative inputs fail with ErrInvalidLineItem.
func LineAmount(quantity, rate decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: quantity %s is negative", apperrors.ErrInvalidLineItem, quantity)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate %s is negative", apperrors.ErrInvalidLineItem, rate)
	}
	return quantity.Mul(rate), nil
}

// CalculateTotals sums the line amounts and applies taxRate (a percentage) to the subtotal.
// Nothing is rounded here; two-decimal rounding belongs to presentation.
func CalculateTotals(items []LineItem, taxRate decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() {
		return Totals{}, fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidTaxRate, taxRate)
	}

	subtotal := decimal.Zero
	for i, item := range items {
		amount, err := LineAmount(item.Quantity, item.Rate)
		if err != nil {
			return Totals{}, fmt.Errorf("item %d: %w", i, err)
		}
		subtotal = subtotal.Add(amount)
	}

	taxAmount := subtotal.Mul(taxRate).Div(hundred)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}, nil
}
