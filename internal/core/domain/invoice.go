package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ClientSnapshot is the billing contact captured when the invoice is created.
type ClientSnapshot struct {
	Name    string `json:"clientName"`
	Email   string `json:"clientEmail,omitempty"`
	Address string `json:"clientAddress,omitempty"`
}

// LineItem belongs to exactly one invoice. Amount is derived from Quantity and Rate.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	InvoiceID   string          `json:"invoiceID"`
	Position    int             `json:"position"` // insertion order, zero based
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the aggregate root: the invoice together with its ordered line items.
// Subtotal, TaxAmount and Total are derived and only ever set by NewInvoice.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	OwnerID       string          `json:"ownerID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Client        ClientSnapshot  `json:"client"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Items         []LineItem      `json:"items"`
	AuditFields
}

// InvoiceSummary is the list form of an invoice; it carries no line items.
type InvoiceSummary struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientName    string          `json:"clientName"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Total         decimal.Decimal `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Summary returns the list form of the invoice.
func (i Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		InvoiceID:     i.InvoiceID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.Client.Name,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Total:         i.Total,
		Status:        i.Status,
		CreatedAt:     i.CreatedAt,
	}
}

// TotalsConsistent reports whether the stored derived fields match the line items.
func (i Invoice) TotalsConsistent() bool {
	totals, err := CalculateTotals(i.Items, i.TaxRate)
	if err != nil {
		return false
	}
	for _, item := range i.Items {
		if !item.Amount.Equal(item.Quantity.Mul(item.Rate)) {
			return false
		}
	}
	return totals.Subtotal.Equal(i.Subtotal) &&
		totals.TaxAmount.Equal(i.TaxAmount) &&
		totals.Total.Equal(i.Total)
}

// LineItemInput is a raw line item as supplied by the caller.
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// InvoiceDraft is everything the caller supplies to create an invoice.
type InvoiceDraft struct {
	InvoiceNumber string
	Client        ClientSnapshot
	IssueDate     time.Time
	DueDate       time.Time
	Items         []LineItemInput
	TaxRate       decimal.Decimal
	Notes         string
}

// NewInvoice validates the draft and assembles a fully populated unpaid invoice owned by ownerID.
// Every offending field is reported in a single *apperrors.ValidationError.
// Identifiers are left empty for the caller to assign.
func NewInvoice(ownerID string, draft InvoiceDraft, now time.Time) (*Invoice, error) {
	verr := &apperrors.ValidationError{}

	if strings.TrimSpace(draft.InvoiceNumber) == "" {
		verr.Add("invoiceNumber", apperrors.ErrEmptyInvoiceNumber)
	}
	if strings.TrimSpace(draft.Client.Name) == "" {
		verr.Add("clientName", apperrors.ErrEmptyClientName)
	}
	if draft.IssueDate.IsZero() {
		verr.Add("issueDate", apperrors.ErrInvalidDate)
	}
	if draft.DueDate.IsZero() {
		verr.Add("dueDate", apperrors.ErrInvalidDate)
	}
	if draft.TaxRate.IsNegative() {
		verr.Add("taxRate", apperrors.ErrInvalidTaxRate)
	}

	items := make([]LineItem, len(draft.Items))
	for i, in := range draft.Items {
		if strings.TrimSpace(in.Description) == "" {
			verr.Add(fmt.Sprintf("items[%d].description", i), apperrors.ErrInvalidLineItem)
		}
		if in.Quantity.IsNegative() {
			verr.Add(fmt.Sprintf("items[%d].quantity", i), apperrors.ErrInvalidLineItem)
		}
		if in.Rate.IsNegative() {
			verr.Add(fmt.Sprintf("items[%d].rate", i), apperrors.ErrInvalidLineItem)
		}
		items[i] = LineItem{
			Position:    i,
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	for i := range items {
		amount, err := LineAmount(items[i].Quantity, items[i].Rate)
		if err != nil {
			return nil, err
		}
		items[i].Amount = amount
	}

	totals, err := CalculateTotals(items, draft.TaxRate)
	if err != nil {
		return nil, err
	}

	return &Invoice{
		OwnerID:       ownerID,
		InvoiceNumber: draft.InvoiceNumber,
		Client:        draft.Client,
		IssueDate:     DateOnly(draft.IssueDate),
		DueDate:       DateOnly(draft.DueDate),
		Subtotal:      totals.Subtotal,
		TaxRate:       draft.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        StatusUnpaid,
		Notes:         draft.Notes,
		Items:         items,
		AuditFields:   NewAuditFields(ownerID, now),
	}, nil
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
