package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
	"github.com/google/uuid"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	userRepo    portsrepo.UserReader
	renderer    portssvc.DocumentRenderer
	archiver    portssvc.DocumentArchiver
	statsCache  portssvc.StatsCache
	now         func() time.Time
	newID       func() string
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithDocumentArchiver stores a copy of every rendered document.
func WithDocumentArchiver(archiver portssvc.DocumentArchiver) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.archiver = archiver
	}
}

// WithStatsInvalidation drops the owner's cached dashboard stats after every invoice write.
func WithStatsInvalidation(cache portssvc.StatsCache) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.statsCache = cache
	}
}

// WithInvoiceClock replaces time.Now.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString for invoice and line item ids.
func WithIDGenerator(newID func() string) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.newID = newID
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, userRepo portsrepo.UserReader, renderer portssvc.DocumentRenderer, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, ownerID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := domain.NewInvoice(ownerID, req.ToInvoiceDraft(), s.now())
	if err != nil {
		s.LogDebug(ctx, "Invoice rejected", slog.String("error", err.Error()))
		return nil, err
	}

	invoice.InvoiceID = s.newID()
	for i := range invoice.Items {
		invoice.Items[i].LineItemID = s.newID()
		invoice.Items[i].InvoiceID = invoice.InvoiceID
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	s.invalidateStats(ctx, ownerID)
	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.Int("item_count", len(invoice.Items)))
	return invoice, nil
}

// loadOwned fetches the invoice and runs it through the ownership gate.
func (s *invoiceService) loadOwned(ctx context.Context, ownerID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, ownerID, invoice.OwnerID, "invoice", invoiceID); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, ownerID, invoiceID string) (*domain.Invoice, error) {
	return s.loadOwned(ctx, ownerID, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, ownerID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	summaries, nextToken, err := s.invoiceRepo.ListInvoicesByOwner(ctx, ownerID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("owner_id", ownerID))
		return nil, err
	}

	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceSummaryResponses(summaries),
		NextToken: nextToken,
	}, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	if _, err := s.loadOwned(ctx, ownerID, invoiceID); err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, ownerID, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}

	s.invalidateStats(ctx, ownerID)
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) SetInvoiceStatus(ctx context.Context, ownerID, invoiceID, status string) error {
	newStatus, err := domain.ParseInvoiceStatus(status)
	if err != nil {
		return apperrors.NewValidationFailedError("status", err)
	}

	if _, err := s.loadOwned(ctx, ownerID, invoiceID); err != nil {
		return err
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, ownerID, invoiceID, newStatus, ownerID, s.now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice status",
				slog.String("invoice_id", invoiceID),
				slog.String("status", string(newStatus)))
		}
		return err
	}

	s.invalidateStats(ctx, ownerID)
	s.LogInfo(ctx, "Invoice status updated",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(newStatus)))
	return nil
}

func (s *invoiceService) RenderInvoice(ctx context.Context, ownerID, invoiceID string) (*domain.Document, error) {
	invoice, err := s.loadOwned(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load issuer profile", slog.String("owner_id", ownerID))
		return nil, err
	}

	content, err := s.renderer.Render(*invoice, owner.Profile)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice", slog.String("invoice_id", invoiceID))
		if !errors.Is(err, apperrors.ErrRenderFailed) {
			err = fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
		}
		return nil, err
	}

	doc := &domain.Document{
		Filename:    domain.DocumentFilename(invoice.InvoiceNumber),
		ContentType: domain.PDFContentType,
		Content:     content,
	}

	if s.archiver != nil {
		key := fmt.Sprintf("%s/%s/%s", ownerID, invoiceID, doc.Filename)
		if err := s.archiver.Archive(ctx, key, *doc); err != nil {
			s.LogError(ctx, err, "Failed to archive rendered invoice",
				slog.String("invoice_id", invoiceID),
				slog.String("key", key))
		}
	}

	s.LogDebug(ctx, "Invoice rendered",
		slog.String("invoice_id", invoiceID),
		slog.Int("bytes", len(content)))
	return doc, nil
}

// invalidateStats never fails the write that triggered it; a stale entry expires with its TTL.
func (s *invoiceService) invalidateStats(ctx context.Context, ownerID string) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.InvalidateStats(ctx, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to invalidate dashboard stats", slog.String("owner_id", ownerID))
	}
}
