package domain

// Document is a rendered, downloadable invoice artifact.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// DocumentFilename names the rendered file after the invoice number.
func DocumentFilename(invoiceNumber string) string {
	return "invoice-" + invoiceNumber + ".pdf"
}

// PDFContentType is the media type of rendered invoices.
const PDFContentType = "application/pdf"
