package services

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
// Invoices owned by another account are reported as apperrors.ErrNotFound.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice with its line items.
	GetInvoice(ctx context.Context, ownerID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves the owner's invoices, most recently created first.
	ListInvoices(ctx context.Context, ownerID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines the write operations of the invoice aggregate.
// Invoices are create-once: there is no operation that edits line items.
type InvoiceWriterSvc interface {
	// CreateInvoice validates, computes totals and persists a new unpaid invoice.
	CreateInvoice(ctx context.Context, ownerID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice and all of its items.
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error
}

// InvoiceStatusSvc governs payment status transitions.
type InvoiceStatusSvc interface {
	// SetInvoiceStatus accepts "unpaid" or "paid"; anything else fails with apperrors.ErrInvalidStatus.
	SetInvoiceStatus(ctx context.Context, ownerID, invoiceID, status string) error
}

// InvoiceRenderSvc produces downloadable invoice documents.
type InvoiceRenderSvc interface {
	RenderInvoice(ctx context.Context, ownerID, invoiceID string) (*domain.Document, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceStatusSvc
	InvoiceRenderSvc
}
