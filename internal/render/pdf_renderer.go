// Package render turns a stored invoice into a printable PDF document.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/jung-kurt/gofpdf"
)

const (
	defaultFooter  = "Thank you for your business!"
	defaultCreator = "simple-invoice-generator"
)

// PDFRenderer lays out invoices on US Letter pages and encodes them with gofpdf.
// It holds no per-document state and is safe for concurrent use.
type PDFRenderer struct {
	footer  string
	creator string
}

// Ensure PDFRenderer implements the DocumentRenderer port
var _ portssvc.DocumentRenderer = (*PDFRenderer)(nil)

// PDFRendererOption configures a PDFRenderer.
type PDFRendererOption func(*PDFRenderer)

// WithFooter replaces the message printed at the bottom of every page.
func WithFooter(footer string) PDFRendererOption {
	return func(r *PDFRenderer) {
		r.footer = footer
	}
}

// WithCreator sets the creator recorded in the document metadata.
func WithCreator(creator string) PDFRendererOption {
	return func(r *PDFRenderer) {
		r.creator = creator
	}
}

// NewPDFRenderer creates a renderer with the standard footer.
func NewPDFRenderer(opts ...PDFRendererOption) *PDFRenderer {
	r := &PDFRenderer{footer: defaultFooter, creator: defaultCreator}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout positions every element of the invoice without encoding it.
func (r *PDFRenderer) Layout(invoice domain.Invoice, issuer domain.IssuerProfile) (*Layout, error) {
	layout, err := buildLayout(invoice, issuer, r.footer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}
	return layout, nil
}

// Render produces the PDF bytes for the invoice. The same invoice and issuer
// always yield byte-identical output; any failure returns ErrRenderFailed and no bytes.
func (r *PDFRenderer) Render(invoice domain.Invoice, issuer domain.IssuerProfile) ([]byte, error) {
	layout, err := r.Layout(invoice, issuer)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	stamp := documentTime(invoice)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle("Invoice "+invoice.InvoiceNumber, true)
	pdf.SetCreator(r.creator, false)

	for _, page := range layout.Pages {
		pdf.AddPage()
		pdf.SetLineWidth(1)
		for _, rule := range page.Rules {
			pdf.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
		}
		for _, t := range page.Texts {
			pdf.SetFont(fontFamily, t.Style, t.Size)
			pdf.SetXY(t.X, t.Y)
			pdf.CellFormat(t.Width, lineHeight(t.Size), t.Value, "", 0, t.Align+"T", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// documentTime pins the metadata timestamps to the invoice so output does not depend on the clock.
func documentTime(invoice domain.Invoice) time.Time {
	if invoice.CreatedAt.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return invoice.CreatedAt.UTC()
}
