package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	OwnerID       string          `db:"owner_id"`
	InvoiceNumber string          `db:"invoice_number"`
	ClientName    string          `db:"client_name"`
	ClientEmail   sql.NullString  `db:"client_email"`
	ClientAddress sql.NullString  `db:"client_address"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	Total         decimal.Decimal `db:"total"`
	Status        string          `db:"status"`
	Notes         sql.NullString  `db:"notes"`
	AuditFields
}

// InvoiceItem is a row of the invoice_items table.
type InvoiceItem struct {
	LineItemID  string          `db:"line_item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	Rate        decimal.Decimal `db:"rate"`
	Amount      decimal.Decimal `db:"amount"`
}
