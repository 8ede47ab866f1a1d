package dto

import (
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of issue and due dates.
const DateLayout = "2006-01-02"

// LineItemRequest is one raw line item of a create request.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// Field rules are enforced by the invoice aggregate so that every offending field is reported.
type CreateInvoiceRequest struct {
	InvoiceNumber string            `json:"invoiceNumber" example:"INV-001"`
	ClientName    string            `json:"clientName" example:"Acme Corp"`
	ClientEmail   string            `json:"clientEmail,omitempty"`
	ClientAddress string            `json:"clientAddress,omitempty"`
	IssueDate     string            `json:"issueDate" example:"2024-03-01"`
	DueDate       string            `json:"dueDate" example:"2024-03-31"`
	Items         []LineItemRequest `json:"items"`
	TaxRate       decimal.Decimal   `json:"taxRate" swaggertype:"number"`
	Notes         string            `json:"notes,omitempty"`
}

// ToInvoiceDraft converts the request into a domain draft.
// Dates that fail to parse are left zero and rejected by the aggregate.
func (r CreateInvoiceRequest) ToInvoiceDraft() domain.InvoiceDraft {
	items := make([]domain.LineItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.LineItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		}
	}
	return domain.InvoiceDraft{
		InvoiceNumber: r.InvoiceNumber,
		Client: domain.ClientSnapshot{
			Name:    r.ClientName,
			Email:   r.ClientEmail,
			Address: r.ClientAddress,
		},
		IssueDate: parseDate(r.IssueDate),
		DueDate:   parseDate(r.DueDate),
		Items:     items,
		TaxRate:   r.TaxRate,
		Notes:     r.Notes,
	}
}

func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UpdateInvoiceStatusRequest carries the new payment status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"paid"`
}

// CreateInvoiceResponse is returned after a successful create.
type CreateInvoiceResponse struct {
	InvoiceID string `json:"invoiceID"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// InvoiceResponse defines the data returned for a single invoice.
type InvoiceResponse struct {
	InvoiceID     string             `json:"invoiceID"`
	InvoiceNumber string             `json:"invoiceNumber"`
	ClientName    string             `json:"clientName"`
	ClientEmail   string             `json:"clientEmail,omitempty"`
	ClientAddress string             `json:"clientAddress,omitempty"`
	IssueDate     string             `json:"issueDate"`
	DueDate       string             `json:"dueDate"`
	Subtotal      string             `json:"subtotal"`
	TaxRate       string             `json:"taxRate"`
	TaxAmount     string             `json:"taxAmount"`
	Total         string             `json:"total"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	Items         []LineItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// InvoiceSummaryResponse is the list form of an invoice.
type InvoiceSummaryResponse struct {
	InvoiceID     string    `json:"invoiceID"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ClientName    string    `json:"clientName"`
	IssueDate     string    `json:"issueDate"`
	DueDate       string    `json:"dueDate"`
	Total         string    `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=0" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoice summaries.
type ListInvoicesResponse struct {
	Invoices  []InvoiceSummaryResponse `json:"invoices"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
// Money is rendered with two decimals; stored values are not rounded.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Rate:        it.Rate.StringFixed(2),
			Amount:      it.Amount.StringFixed(2),
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.Client.Name,
		ClientEmail:   inv.Client.Email,
		ClientAddress: inv.Client.Address,
		IssueDate:     inv.IssueDate.Format(DateLayout),
		DueDate:       inv.DueDate.Format(DateLayout),
		Subtotal:      inv.Subtotal.StringFixed(2),
		TaxRate:       inv.TaxRate.String(),
		TaxAmount:     inv.TaxAmount.StringFixed(2),
		Total:         inv.Total.StringFixed(2),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceSummaryResponses converts summaries to their response DTOs.
func ToInvoiceSummaryResponses(summaries []domain.InvoiceSummary) []InvoiceSummaryResponse {
	responses := make([]InvoiceSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = InvoiceSummaryResponse{
			InvoiceID:     s.InvoiceID,
			InvoiceNumber: s.InvoiceNumber,
			ClientName:    s.ClientName,
			IssueDate:     s.IssueDate.Format(DateLayout),
			DueDate:       s.DueDate.Format(DateLayout),
			Total:         s.Total.StringFixed(2),
			Status:        string(s.Status),
			CreatedAt:     s.CreatedAt,
		}
	}
	return responses
}
