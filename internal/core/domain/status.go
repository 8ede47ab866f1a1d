package domain

import (
	"fmt"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	StatusUnpaid InvoiceStatus = "unpaid"
	StatusPaid   InvoiceStatus = "paid"
)

// IsValid reports whether s is a known status.
func (s InvoiceStatus) IsValid() bool {
	return s == StatusUnpaid || s == StatusPaid
}

// ParseInvoiceStatus accepts exactly "unpaid" or "paid".
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	s := InvoiceStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, raw)
	}
	return s, nil
}
