package models

import (
	"testing"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRowsPreserveItemOrderAndOptionalFields(t *testing.T) {
	inv, err := domain.NewInvoice("user-1", domain.InvoiceDraft{
		InvoiceNumber: "INV-7",
		Client:        domain.ClientSnapshot{Name: "Acme Corp"},
		IssueDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Items: []domain.LineItemInput{
			{Description: "First", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(5)},
			{Description: "Second", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(5)},
		},
	}, time.Now().UTC())
	require.NoError(t, err)
	inv.InvoiceID = "inv-7"

	row, items := ToModelInvoice(*inv)
	assert.False(t, row.ClientEmail.Valid)
	assert.False(t, row.Notes.Valid)
	require.Len(t, items, 2)
	assert.Equal(t, "inv-7", items[1].InvoiceID)
	assert.Equal(t, 1, items[1].Position)

	back := ToDomainInvoice(row, items)
	assert.Equal(t, "Second", back.Items[1].Description)
	assert.Equal(t, "", back.Client.Email)
	assert.True(t, back.TotalsConsistent())
	assert.Equal(t, inv.Summary(), ToDomainInvoiceSummary(row))
}

func TestUserRowCarriesIssuerProfile(t *testing.T) {
	u := domain.User{UserID: "u", Email: "a@b.test", Profile: domain.IssuerProfile{BusinessName: "Studio"}}

	row := ToModelUser(u)
	assert.True(t, row.BusinessName.Valid)
	assert.False(t, row.BusinessPhone.Valid)
	assert.Equal(t, u, ToDomainUser(row))
}
