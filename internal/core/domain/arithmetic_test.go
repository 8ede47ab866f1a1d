package domain_test

import (
	"testing"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAmount(t *testing.T) {
	amount, err := domain.LineAmount(dec("2.5"), dec("19.99"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("49.975")))

	_, err = domain.LineAmount(dec("-1"), dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidLineItem)

	_, err = domain.LineAmount(dec("1"), dec("-0.01"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidLineItem)

	amount, err = domain.LineAmount(decimal.Zero, dec("10"))
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestCalculateTotals_NoDriftAcrossManyAdditions(t *testing.T) {
	items := make([]domain.LineItem, 1000)
	for i := range items {
		items[i] = domain.LineItem{Quantity: dec("1"), Rate: dec("0.10")}
	}

	totals, err := domain.CalculateTotals(items, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec("100")), "got %s", totals.Subtotal)
}

func TestCalculateTotals_RoundsOnlyAtPresentation(t *testing.T) {
	// Three lines of 0.333 each: rounding per line would yield 0.99.
	items := []domain.LineItem{
		{Quantity: dec("1"), Rate: dec("0.333")},
		{Quantity: dec("1"), Rate: dec("0.333")},
		{Quantity: dec("1"), Rate: dec("0.333")},
	}

	totals, err := domain.CalculateTotals(items, dec("10"))
	require.NoError(t, err)
	assert.Equal(t, "0.999", totals.Subtotal.String())
	assert.Equal(t, "1.00", totals.Subtotal.StringFixed(2))
	assert.True(t, totals.TaxAmount.Equal(dec("0.0999")))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)))
}

func TestCalculateTotals_Errors(t *testing.T) {
	_, err := domain.CalculateTotals(nil, dec("-8"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaxRate)

	_, err = domain.CalculateTotals([]domain.LineItem{{Quantity: dec("-1"), Rate: dec("1")}}, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLineItem)
}
