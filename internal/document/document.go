// Package document turns a quote into a fixed-layout document.
//
// Render produces the Document structure that both the on-screen JSON and
// the PDF export are drawn from, so the two never differ in content.
// Missing client or profile data degrades to blank fields; rendering never
// fails.
package document

import (
	"regexp"
	"strings"

	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/pricing"
)

const (
	UnknownClientName = "Cliente Desconhecido"
	SignatureCaption  = "Assinatura do Fotógrafo"
	missingTaxID      = "N/A"
)

type Document struct {
	Filename  string         `json:"filename"`
	Status    string         `json:"status"`
	Header    Header         `json:"header"`
	Client    ClientBlock    `json:"client"`
	Items     []ItemRow      `json:"items"`
	Totals    TotalsBlock    `json:"totals"`
	Payment   PaymentBlock   `json:"payment"`
	Notes     *NotesBlock    `json:"notes,omitempty"`
	Signature SignatureBlock `json:"signature"`
}

type Header struct {
	Title         string `json:"title"`
	IssuerName    string `json:"issuer_name"`
	IssuerTaxID   string `json:"issuer_tax_id"`
	IssuerAddress string `json:"issuer_address"`
	IssuerPhone   string `json:"issuer_phone"`
	IssuerEmail   string `json:"issuer_email"`
	QuoteNumber   string `json:"quote_number"`
	IssuedOn      string `json:"issued_on"`
	ValidUntil    string `json:"valid_until"`
}

type ClientBlock struct {
	Known   bool   `json:"known"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ItemRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type TotalLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TotalsBlock struct {
	Lines []TotalLine `json:"lines"`
	Total string      `json:"total"`
}

type PaymentBlock struct {
	Method     string `json:"method"`
	Conditions string `json:"conditions"`
}

type NotesBlock struct {
	Text string `json:"text"`
}

type SignatureBlock struct {
	Name    string `json:"name"`
	Caption string `json:"caption"`
}

// Renderer formats documents for one locale.
type Renderer struct {
	Locale Locale
	PDF    PDFOptions
}

func NewRenderer(locale Locale, pdf PDFOptions) Renderer {
	return Renderer{Locale: locale, PDF: pdf}
}

// Render uses the pt-BR locale.
func Render(q entities.Quote, profile *entities.PhotographerProfile, client *entities.Client) Document {
	return Renderer{Locale: PtBR}.Render(q, profile, client)
}

// Render builds the document. profile and client may be nil.
func (r Renderer) Render(q entities.Quote, profile *entities.PhotographerProfile, client *entities.Client) Document {
	var p entities.PhotographerProfile
	if profile != nil {
		p = *profile
	}
	l := r.Locale

	doc := Document{
		Status: q.Status.Label(),
		Header: Header{
			Title:         p.DisplayName(),
			IssuerName:    p.Name,
			IssuerTaxID:   p.TaxID,
			IssuerAddress: p.Address,
			IssuerPhone:   p.Phone,
			IssuerEmail:   p.Email,
			QuoteNumber:   q.Number,
			IssuedOn:      l.Date(q.Date),
			ValidUntil:    l.Date(q.ValidUntil),
		},
		Client: clientBlock(client),
		Items:  make([]ItemRow, 0, len(q.Items)),
		Payment: PaymentBlock{
			Method:     q.PaymentMethod.Label(),
			Conditions: q.PaymentConditions,
		},
		Signature: SignatureBlock{Name: p.Name, Caption: SignatureCaption},
	}
	doc.Filename = Filename(q.Number, doc.Client.Name)

	for _, it := range q.Items {
		doc.Items = append(doc.Items, ItemRow{
			Name:        it.Name,
			Description: it.Description,
			Type:        it.Type.Label(),
			Quantity:    it.Quantity,
			UnitPrice:   l.Money(it.UnitPrice),
			LineTotal:   l.Money(pricing.LineTotal(it)),
		})
	}

	totals := pricing.Compute(q.Items, q.Discount, q.ExtraFees)
	doc.Totals.Lines = append(doc.Totals.Lines, TotalLine{Label: "Subtotal", Value: l.Money(totals.Subtotal)})
	if !q.Discount.IsZero() {
		doc.Totals.Lines = append(doc.Totals.Lines, TotalLine{Label: "Desconto", Value: "- " + l.Money(q.Discount)})
	}
	if !q.ExtraFees.IsZero() {
		doc.Totals.Lines = append(doc.Totals.Lines, TotalLine{Label: "Taxas Adicionais", Value: "+ " + l.Money(q.ExtraFees)})
	}
	doc.Totals.Total = l.Money(totals.Total)

	notes := strings.TrimSpace(q.Notes)
	if notes == "" {
		notes = strings.TrimSpace(p.DefaultTerms)
	}
	if notes != "" {
		doc.Notes = &NotesBlock{Text: notes}
	}
	return doc
}

func clientBlock(c *entities.Client) ClientBlock {
	if c == nil || c.ID == "" {
		return ClientBlock{Name: UnknownClientName, TaxID: missingTaxID}
	}
	b := ClientBlock{
		Known:   true,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if b.Name == "" {
		b.Name = UnknownClientName
	}
	if b.TaxID == "" {
		b.TaxID = missingTaxID
	}
	return b
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[/\\"]`)
)

// Filename is Orcamento_<number>_<Client_Name>.pdf with whitespace runs
// collapsed to a single underscore.
func Filename(number, clientName string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(clientName), "_")
	name = unsafeChars.ReplaceAllString(name, "_")
	number = unsafeChars.ReplaceAllString(strings.TrimSpace(number), "_")
	if name == "" {
		return "Orcamento_" + number + ".pdf"
	}
	return "Orcamento_" + number + "_" + name + ".pdf"
}
