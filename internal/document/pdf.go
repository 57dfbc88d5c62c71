package document

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
)

// PDFOptions tweaks the export without touching content.
type PDFOptions struct {
	Compress bool
	// CreatedAt is written as the PDF creation date. Export is byte-stable
	// for a fixed document only when it is set.
	CreatedAt time.Time
}

var (
	colorPrimary = [3]int{79, 70, 229}
	colorMuted   = [3]int{100, 116, 139}
	colorText    = [3]int{51, 65, 85}
	colorRule    = [3]int{226, 232, 240}
	colorZebra   = [3]int{248, 250, 252}
)

var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"Serviço", 70, "L"},
	{"Tipo", 25, "L"},
	{"Qtd", 15, "C"},
	{"Unitário", 30, "R"},
	{"Total", 30, "R"},
}

const (
	marginLeft  = 20.0
	totalsLabel = 120.0
	totalsValue = 160.0
)

// ExportPDF draws doc as an A4 page (or more) and writes it to w.
func (r Renderer) ExportPDF(doc Document, w io.Writer) error {
	return ExportPDF(doc, w, r.PDF)
}

func ExportPDF(doc Document, w io.Writer, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	if !opts.CreatedAt.IsZero() {
		pdf.SetCreationDate(opts.CreatedAt)
	}
	pdf.SetTitle("Orçamento #"+doc.Header.QuoteNumber, true)
	pdf.SetAutoPageBreak(true, 45)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	text := func(x, y float64, s string) { pdf.Text(x, y, tr(s)) }
	color := func(c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	color(colorPrimary)
	text(marginLeft, 25, doc.Header.Title)

	pdf.SetFont("Helvetica", "", 10)
	color(colorMuted)
	text(marginLeft, 32, fmt.Sprintf("%s | CNPJ/CPF: %s", doc.Header.IssuerName, doc.Header.IssuerTaxID))
	text(marginLeft, 37, doc.Header.IssuerAddress)
	text(marginLeft, 42, fmt.Sprintf("%s | %s", doc.Header.IssuerPhone, doc.Header.IssuerEmail))

	pdf.SetFont("Helvetica", "B", 12)
	color(colorText)
	text(140, 25, "ORÇAMENTO #"+doc.Header.QuoteNumber)
	pdf.SetFont("Helvetica", "", 10)
	text(140, 32, "Emissão: "+doc.Header.IssuedOn)
	text(140, 37, "Válido até: "+doc.Header.ValidUntil)

	// Client
	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	pdf.Line(marginLeft, 50, 190, 50)

	pdf.SetFont("Helvetica", "B", 11)
	color(colorPrimary)
	text(marginLeft, 60, "CLIENTE:")
	color(colorText)
	text(marginLeft, 67, doc.Client.Name)
	pdf.SetFont("Helvetica", "", 10)
	text(marginLeft, 72, "CPF/CNPJ: "+doc.Client.TaxID)
	text(marginLeft, 77, "E-mail: "+doc.Client.Email)
	text(marginLeft, 82, "Endereço: "+doc.Client.Address)

	// Items
	pdf.SetXY(marginLeft, 90)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetTextColor(255, 255, 255)
	for _, col := range itemColumns {
		pdf.CellFormat(col.width, 8, tr(col.title), "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	color(colorText)
	pdf.SetFillColor(colorZebra[0], colorZebra[1], colorZebra[2])
	for i, row := range doc.Items {
		cells := []string{row.Name, row.Type, strconv.Itoa(row.Quantity), row.UnitPrice, row.LineTotal}
		pdf.SetX(marginLeft)
		for c, col := range itemColumns {
			pdf.CellFormat(col.width, 7, tr(cells[c]), "1", 0, col.align, i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals
	y := pdf.GetY() + 10
	if y > pageHeight-100 {
		pdf.AddPage()
		y = 20
	}
	color(colorMuted)
	for _, line := range doc.Totals.Lines {
		text(totalsLabel, y, line.Label+":")
		rightAligned(pdf, totalsValue, y, 30, tr(line.Value))
		y += 6
	}
	y += 4
	pdf.SetFont("Helvetica", "B", 14)
	color(colorText)
	text(totalsLabel, y, "TOTAL FINAL:")
	rightAligned(pdf, totalsValue, y, 30, tr(doc.Totals.Total))

	// Payment
	y += 20
	pdf.SetFont("Helvetica", "B", 11)
	color(colorPrimary)
	text(marginLeft, y, "CONDIÇÕES DE PAGAMENTO:")
	pdf.SetFont("Helvetica", "", 10)
	color(colorText)
	y += 7
	text(marginLeft, y, "Método: "+doc.Payment.Method)
	y += 5
	text(marginLeft, y, doc.Payment.Conditions)

	// Notes
	if doc.Notes != nil {
		y += 15
		pdf.SetFont("Helvetica", "B", 11)
		color(colorPrimary)
		text(marginLeft, y, "OBSERVAÇÕES ADICIONAIS:")
		pdf.SetFont("Helvetica", "", 10)
		color(colorMuted)
		pdf.SetXY(marginLeft, y+3)
		pdf.MultiCell(170, 5, tr(doc.Notes.Text), "", "L", false)
	}

	// Signature
	footerY := pageHeight - 40
	pdf.SetDrawColor(colorText[0], colorText[1], colorText[2])
	pdf.Line(marginLeft, footerY, 90, footerY)
	pdf.SetFont("Helvetica", "", 10)
	color(colorText)
	text(marginLeft, footerY+6, doc.Signature.Name)
	text(marginLeft, footerY+11, doc.Signature.Caption)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return pdf.Output(w)
}

// rightAligned writes s so that it ends at x+width on baseline y.
func rightAligned(pdf *gofpdf.Fpdf, x, y, width float64, s string) {
	pdf.SetXY(x, y-4)
	pdf.CellFormat(width, 5, s, "", 0, "R", false, 0, "")
}
