package render

import (
	"fmt"
	"strings"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/utils"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points (US Letter).
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	margin       = 50.0
	contentWidth = pageWidth - 2*margin

	itemX    = 50.0
	qtyX     = 300.0
	rateX    = 370.0
	amountX  = 470.0
	ruleEndX = 550.0
	totalsX  = 400.0

	descriptionWidth = 240.0
	descriptionLines = 2
	rowStep          = 25.0
	headerRuleOffset = 15.0
	firstRowOffset   = 25.0

	footerY     = pageHeight - margin
	bottomLimit = footerY - 10

	lineHeightFactor = 1.156
	fontFamily       = "Helvetica"
	dateLayout       = "2006-01-02"
)

// Alignment values understood by CellFormat.
const (
	AlignLeft   = "L"
	AlignRight  = "R"
	AlignCenter = "C"
)

// Text is one positioned run of text. Y is the top of the line and Value is
// already translated to the PDF code page.
type Text struct {
	X     float64
	Y     float64
	Width float64
	Value string
	Size  float64
	Style string // "", "B" or "U"
	Align string
}

// Rule is a horizontal separator line.
type Rule struct {
	X1, Y1, X2, Y2 float64
}

// Page holds everything drawn on a single page.
type Page struct {
	Texts []Text
	Rules []Rule
}

// Layout is the fully positioned document, independent of the PDF encoding.
type Layout struct {
	Pages []Page
}

// Strings returns every text value of the layout in drawing order.
func (l Layout) Strings() []string {
	var out []string
	for _, p := range l.Pages {
		for _, t := range p.Texts {
			out = append(out, t.Value)
		}
	}
	return out
}

func lineHeight(size float64) float64 {
	return size * lineHeightFactor
}

type layoutBuilder struct {
	measure *gofpdf.Fpdf
	tr      func(string) string
	footer  string
	pages   []Page
	y       float64
}

func newLayoutBuilder(footer string) *layoutBuilder {
	measure := gofpdf.New("P", "pt", "Letter", "")
	measure.SetFont(fontFamily, "", 10)
	measure.SetCellMargin(0)
	b := &layoutBuilder{
		measure: measure,
		tr:      measure.UnicodeTranslatorFromDescriptor(""),
		footer:  footer,
	}
	b.newPage()
	return b
}

func (b *layoutBuilder) newPage() {
	b.pages = append(b.pages, Page{})
	b.y = margin
}

func (b *layoutBuilder) page() *Page {
	return &b.pages[len(b.pages)-1]
}

func (b *layoutBuilder) text(x, y, width float64, value string, size float64, style, align string) {
	p := b.page()
	p.Texts = append(p.Texts, Text{X: x, Y: y, Width: width, Value: value, Size: size, Style: style, Align: align})
}

func (b *layoutBuilder) rule(y float64) {
	p := b.page()
	p.Rules = append(p.Rules, Rule{X1: itemX, Y1: y, X2: ruleEndX, Y2: y})
}

func (b *layoutBuilder) moveDown(lines, size float64) {
	b.y += lines * lineHeight(size)
}

// flow writes wrapped text across the content width at the cursor and advances it.
func (b *layoutBuilder) flow(value string, size float64, style, align string) {
	for _, line := range b.wrap(value, contentWidth, size, style, 0) {
		if b.y+lineHeight(size) > bottomLimit {
			b.newPage()
		}
		b.text(margin, b.y, contentWidth, line, size, style, align)
		b.y += lineHeight(size)
	}
}

func (b *layoutBuilder) width(s string, size float64, style string) float64 {
	b.measure.SetFont(fontFamily, style, size)
	return b.measure.GetStringWidth(s)
}

// wrap translates value to the PDF code page and breaks it into lines no wider
// than width, on spaces where possible and by character otherwise. With
// maxLines > 0 at most maxLines+1 lines are returned so clip can see the overflow.
func (b *layoutBuilder) wrap(value string, width, size float64, style string, maxLines int) []string {
	b.measure.SetFont(fontFamily, style, size)
	var lines []string
	for _, raw := range b.measure.SplitLines([]byte(b.tr(value)), width) {
		lines = append(lines, strings.TrimRight(string(raw), " \t"))
		if maxLines > 0 && len(lines) > maxLines {
			break
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// clip keeps at most max lines, marking the cut with an ellipsis.
func (b *layoutBuilder) clip(lines []string, max int, width, size float64) []string {
	if len(lines) <= max {
		return lines
	}
	lines = lines[:max]
	last := strings.TrimRight(lines[max-1], " ")
	for last != "" && b.width(last+"...", size, "") > width {
		last = strings.TrimRight(last[:len(last)-1], " ")
	}
	lines[max-1] = last + "..."
	return lines
}

func (b *layoutBuilder) tableHeader(top float64) {
	b.text(itemX, top, descriptionWidth, "Description", 10, "B", AlignLeft)
	b.text(qtyX, top, rateX-qtyX, "Qty", 10, "B", AlignLeft)
	b.text(rateX, top, amountX-rateX, "Rate", 10, "B", AlignLeft)
	b.text(amountX, top, ruleEndX-amountX, "Amount", 10, "B", AlignLeft)
	b.rule(top + headerRuleOffset)
	b.y = top + firstRowOffset
}

func (b *layoutBuilder) item(item domain.LineItem) {
	if b.y+rowStep > bottomLimit {
		b.newPage()
		b.tableHeader(margin)
	}
	y := b.y
	desc := b.clip(b.wrap(item.Description, descriptionWidth, 10, "", descriptionLines), descriptionLines, descriptionWidth, 10)
	for i, line := range desc {
		b.text(itemX, y+float64(i)*lineHeight(10), descriptionWidth, line, 10, "", AlignLeft)
	}
	b.text(qtyX, y, rateX-qtyX, item.Quantity.String(), 10, "", AlignLeft)
	b.text(rateX, y, amountX-rateX, utils.FormatMoney(item.Rate), 10, "", AlignLeft)
	b.text(amountX, y, ruleEndX-amountX, utils.FormatMoney(item.Amount), 10, "", AlignLeft)
	b.y += rowStep
}

func (b *layoutBuilder) totals(inv domain.Invoice) {
	showTax := inv.TaxRate.IsPositive()
	need := 15 + 20 + lineHeight(12)
	if showTax {
		need += 20
	}
	if b.y+need > bottomLimit {
		b.newPage()
	}

	y := b.y + 15
	b.text(totalsX, y, amountX-totalsX, "Subtotal:", 10, "", AlignLeft)
	b.text(amountX, y, ruleEndX-amountX, utils.FormatMoney(inv.Subtotal), 10, "", AlignLeft)

	if showTax {
		y += 20
		b.text(totalsX, y, amountX-totalsX, fmt.Sprintf("Tax (%s%%):", inv.TaxRate.String()), 10, "", AlignLeft)
		b.text(amountX, y, ruleEndX-amountX, utils.FormatMoney(inv.TaxAmount), 10, "", AlignLeft)
	}

	y += 20
	b.text(totalsX, y, amountX-totalsX, "Total:", 12, "B", AlignLeft)
	b.text(amountX, y, ruleEndX-amountX, utils.FormatMoney(inv.Total), 12, "B", AlignLeft)
	b.y = y + lineHeight(12)
}

func (b *layoutBuilder) footers() {
	for i := range b.pages {
		b.pages[i].Texts = append(b.pages[i].Texts, Text{
			X: margin, Y: footerY, Width: contentWidth,
			Value: b.tr(b.footer), Size: 8, Align: AlignCenter,
		})
	}
}

func buildLayout(inv domain.Invoice, issuer domain.IssuerProfile, footer string) (*Layout, error) {
	b := newLayoutBuilder(footer)

	b.flow("INVOICE", 24, "", AlignRight)
	b.moveDown(1, 24)

	for _, line := range issuer.Lines() {
		b.flow(line, 10, "", AlignLeft)
	}
	b.moveDown(1, 10)

	b.flow("Invoice #: "+inv.InvoiceNumber, 10, "", AlignRight)
	b.flow("Issue Date: "+inv.IssueDate.Format(dateLayout), 10, "", AlignRight)
	b.flow("Due Date: "+inv.DueDate.Format(dateLayout), 10, "", AlignRight)
	b.moveDown(1, 10)

	b.flow("Bill To:", 12, "U", AlignLeft)
	b.flow(inv.Client.Name, 10, "", AlignLeft)
	if inv.Client.Email != "" {
		b.flow(inv.Client.Email, 10, "", AlignLeft)
	}
	if inv.Client.Address != "" {
		b.flow(inv.Client.Address, 10, "", AlignLeft)
	}
	b.moveDown(2, 10)

	if b.y+firstRowOffset+rowStep > bottomLimit {
		b.newPage()
	}
	b.tableHeader(b.y)
	for _, item := range inv.Items {
		b.item(item)
	}
	b.rule(b.y)

	b.totals(inv)

	if inv.Notes != "" {
		b.moveDown(3, 12)
		if b.y+2*lineHeight(10) > bottomLimit {
			b.newPage()
		}
		b.flow("Notes:", 10, "U", AlignLeft)
		b.flow(inv.Notes, 10, "", AlignLeft)
	}

	b.footers()

	if err := b.measure.Error(); err != nil {
		return nil, err
	}
	return &Layout{Pages: b.pages}, nil
}
