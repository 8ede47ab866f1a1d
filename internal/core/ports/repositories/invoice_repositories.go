package repositories

import (
	"context"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
// The store performs no authorization; callers check ownership on the returned invoice.
type InvoiceReader interface {
	// FindInvoiceByID loads an invoice with its line items in insertion order.
	// Returns apperrors.ErrNotFound when no row exists.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByOwner returns summaries, most recently created first.
	// A limit <= 0 returns every invoice and no next token.
	ListInvoicesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.InvoiceSummary, *string, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists the invoice and all of its items as one unit.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes the invoice; its items go with it.
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error

	// UpdateInvoiceStatus sets the payment status in place.
	UpdateInvoiceStatus(ctx context.Context, ownerID, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}

// InvoiceStatsReader aggregates invoices for the dashboard.
type InvoiceStatsReader interface {
	SummarizeInvoicesByOwner(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceStatsReader
}
