package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	"github.com/Ash-neon/simple-invoice-generator/internal/models"
	"github.com/Ash-neon/simple-invoice-generator/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a repository for invoices and their line items.
func newPgxInvoiceRepository(pool Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, owner_id, invoice_number, client_name, client_email, client_address,
	issue_date, due_date, subtotal, tax_rate, tax_amount, total, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.OwnerID,
		&m.InvoiceNumber,
		&m.ClientName,
		&m.ClientEmail,
		&m.ClientAddress,
		&m.IssueDate,
		&m.DueDate,
		&m.Subtotal,
		&m.TaxRate,
		&m.TaxAmount,
		&m.Total,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice inserts the invoice and all of its line items in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	m, items := models.ToModelInvoice(invoice)
	invoiceQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		m.InvoiceID,
		m.OwnerID,
		m.InvoiceNumber,
		m.ClientName,
		m.ClientEmail,
		m.ClientAddress,
		m.IssueDate,
		m.DueDate,
		m.Subtotal,
		m.TaxRate,
		m.TaxAmount,
		m.Total,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("invoice " + m.InvoiceID + " already exists")
		}
		return apperrors.NewPersistenceError("failed to insert invoice "+m.InvoiceID, err)
	}

	if len(items) > 0 {
		itemQuery := `
			INSERT INTO invoice_items (line_item_id, invoice_id, position, description, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		batch := &pgx.Batch{}
		for _, item := range items {
			batch.Queue(itemQuery,
				item.LineItemID,
				item.InvoiceID,
				item.Position,
				item.Description,
				item.Quantity,
				item.Rate,
				item.Amount,
			)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewPersistenceError("failed to insert line items for invoice "+m.InvoiceID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID loads the invoice with its items in insertion order.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice not found")
		}
		return nil, apperrors.NewPersistenceError("failed to find invoice "+invoiceID, err)
	}

	itemQuery := `
		SELECT line_item_id, invoice_id, position, description, quantity, rate, amount
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position ASC;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, invoiceID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query line items for invoice "+invoiceID, err)
	}
	defer rows.Close()

	items := make([]models.InvoiceItem, 0)
	for rows.Next() {
		var it models.InvoiceItem
		if err := rows.Scan(
			&it.LineItemID,
			&it.InvoiceID,
			&it.Position,
			&it.Description,
			&it.Quantity,
			&it.Rate,
			&it.Amount,
		); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan line item for invoice "+invoiceID, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating line items for invoice "+invoiceID, err)
	}

	d := models.ToDomainInvoice(m, items)
	return &d, nil
}

// ListInvoicesByOwner returns the owner's invoices newest first. A limit of zero or less returns everything.
func (r *PgxInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.InvoiceSummary, *string, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationFailedError("nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor stable when created_at ties.
		query += ` AND (created_at, invoice_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}

	query += ` ORDER BY created_at DESC, invoice_id DESC`
	if limit > 0 {
		// One extra row tells us whether a next page exists.
		query += ` LIMIT $` + strconv.Itoa(len(args)+1)
		args = append(args, limit+1)
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, apperrors.NewPersistenceError("failed to query invoices for owner "+ownerID, err)
	}
	defer rows.Close()

	summaries := make([]domain.InvoiceSummary, 0)
	for rows.Next() {
		m, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewPersistenceError("failed to scan invoice row for owner "+ownerID, scanErr)
		}
		summaries = append(summaries, models.ToDomainInvoiceSummary(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewPersistenceError("error iterating invoice rows for owner "+ownerID, err)
	}

	var nextTokenVal *string
	if limit > 0 && len(summaries) > limit {
		last := summaries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		nextTokenVal = &token
		summaries = summaries[:limit]
	}

	return summaries, nextTokenVal, nil
}

// DeleteInvoice removes an owned invoice. Items are removed by the foreign key cascade.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1 AND owner_id = $2;`, invoiceID, ownerID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to delete invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found")
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, ownerID, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, ownerID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update status of invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found")
	}
	return nil
}

// SummarizeInvoicesByOwner aggregates counts and revenue split by payment status.
func (r *PgxInvoiceRepository) SummarizeInvoicesByOwner(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'unpaid'),
			COALESCE(SUM(total) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(total) FILTER (WHERE status = 'unpaid'), 0)
		FROM invoices
		WHERE owner_id = $1;
	`
	var stats domain.DashboardStats
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&stats.TotalInvoices,
		&stats.PaidInvoices,
		&stats.UnpaidInvoices,
		&stats.TotalRevenue,
		&stats.PendingRevenue,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to summarize invoices for owner "+ownerID, err)
	}
	return &stats, nil
}
