package services

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// DocumentRenderer lays out an invoice and its issuer profile as a printable document.
// Output must be byte-identical for identical inputs.
type DocumentRenderer interface {
	Render(invoice domain.Invoice, issuer domain.IssuerProfile) ([]byte, error)
}

// DocumentArchiver keeps a copy of rendered documents outside the database.
type DocumentArchiver interface {
	Archive(ctx context.Context, key string, doc domain.Document) error
}
