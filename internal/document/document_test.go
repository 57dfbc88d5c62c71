package document

import (
	"bytes"
	"testing"
	"time"

	"focusquote/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:         "q-1",
		Number:     "4821",
		ClientID:   "c-1",
		Date:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		Status:     entities.QuoteStatusSent,
		Items: []entities.QuoteItem{
			{ID: "i-1", Name: "Ensaio Gestante", Description: "20 fotos editadas", UnitPrice: decimal.NewFromInt(300), Quantity: 2, Type: entities.ItemTypePackage},
			{ID: "i-2", Name: "Hora extra", UnitPrice: decimal.NewFromInt(50), Quantity: 1, Type: entities.ItemTypeHourly},
		},
		Discount:          decimal.NewFromInt(100),
		ExtraFees:         decimal.NewFromInt(20),
		PaymentMethod:     entities.PaymentMethodPix,
		PaymentConditions: "50% reserva + 50% entrega",
		Total:             decimal.NewFromInt(570),
	}
}

func sampleProfile() *entities.PhotographerProfile {
	return &entities.PhotographerProfile{
		Name:         "Ana Souza",
		StudioName:   "Estúdio Luz",
		TaxID:        "12.345.678/0001-90",
		Phone:        "(11) 99999-0000",
		Email:        "ana@estudioluz.com",
		Address:      "Rua das Flores, 10",
		DefaultTerms: "Entrega em 30 dias.",
	}
}

func sampleClient() *entities.Client {
	return &entities.Client{ID: "c-1", Name: "Maria  da Silva", Email: "maria@example.com", Phone: "+55 11 98888-7777", Address: "Av. Paulista, 1000"}
}

func TestRender_Sections(t *testing.T) {
	doc := Render(sampleQuote(), sampleProfile(), sampleClient())

	assert.Equal(t, "Estúdio Luz", doc.Header.Title)
	assert.Equal(t, "4821", doc.Header.QuoteNumber)
	assert.Equal(t, "01/10/2026", doc.Header.IssuedOn)
	assert.Equal(t, "16/10/2026", doc.Header.ValidUntil)
	assert.Equal(t, "Enviado", doc.Status)

	assert.True(t, doc.Client.Known)
	assert.Equal(t, "Maria  da Silva", doc.Client.Name)
	assert.Equal(t, "N/A", doc.Client.TaxID)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, ItemRow{Name: "Ensaio Gestante", Description: "20 fotos editadas", Type: "Pacote", Quantity: 2, UnitPrice: "R$ 300,00", LineTotal: "R$ 600,00"}, doc.Items[0])
	assert.Equal(t, "Hora", doc.Items[1].Type)

	assert.Equal(t, []TotalLine{
		{Label: "Subtotal", Value: "R$ 650,00"},
		{Label: "Desconto", Value: "- R$ 100,00"},
		{Label: "Taxas Adicionais", Value: "+ R$ 20,00"},
	}, doc.Totals.Lines)
	assert.Equal(t, "R$ 570,00", doc.Totals.Total)

	assert.Equal(t, PaymentBlock{Method: "Pix", Conditions: "50% reserva + 50% entrega"}, doc.Payment)
	require.NotNil(t, doc.Notes)
	assert.Equal(t, "Entrega em 30 dias.", doc.Notes.Text)
	assert.Equal(t, SignatureBlock{Name: "Ana Souza", Caption: SignatureCaption}, doc.Signature)
	assert.Equal(t, "Orcamento_4821_Maria_da_Silva.pdf", doc.Filename)
}

func TestRender_OmitsZeroAdjustments(t *testing.T) {
	q := sampleQuote()
	q.Items = []entities.QuoteItem{{ID: "i-1", Name: "Casamento", UnitPrice: decimal.NewFromInt(850), Quantity: 1, Type: entities.ItemTypeDaily}}
	q.Discount = decimal.Zero
	q.ExtraFees = decimal.Zero

	doc := Render(q, sampleProfile(), sampleClient())
	assert.Equal(t, []TotalLine{{Label: "Subtotal", Value: "R$ 850,00"}}, doc.Totals.Lines)
	assert.Equal(t, "R$ 850,00", doc.Totals.Total)
}

func TestRender_TotalIgnoresStoredValue(t *testing.T) {
	q := sampleQuote()
	q.Total = decimal.NewFromInt(1)
	doc := Render(q, sampleProfile(), sampleClient())
	assert.Equal(t, "R$ 570,00", doc.Totals.Total)
}

func TestRender_Notes(t *testing.T) {
	q := sampleQuote()
	q.Notes = "Levar roupas extras."
	doc := Render(q, sampleProfile(), sampleClient())
	require.NotNil(t, doc.Notes)
	assert.Equal(t, "Levar roupas extras.", doc.Notes.Text)

	q.Notes = "   "
	profile := sampleProfile()
	profile.DefaultTerms = ""
	doc = Render(q, profile, sampleClient())
	assert.Nil(t, doc.Notes)
}

func TestRender_Degraded(t *testing.T) {
	assert.NotPanics(t, func() {
		doc := Render(sampleQuote(), nil, nil)
		assert.False(t, doc.Client.Known)
		assert.Equal(t, UnknownClientName, doc.Client.Name)
		assert.Equal(t, "", doc.Client.Address)
		assert.Equal(t, "", doc.Header.Title)
		assert.Equal(t, "Orcamento_4821_Cliente_Desconhecido.pdf", doc.Filename)
	})

	assert.NotPanics(t, func() {
		doc := Render(entities.Quote{}, &entities.PhotographerProfile{}, &entities.Client{})
		assert.Empty(t, doc.Items)
		assert.Equal(t, "R$ 0,00", doc.Totals.Total)
		assert.Equal(t, "", doc.Header.IssuedOn)
	})
}

func TestRender_RoundTripItems(t *testing.T) {
	q := sampleQuote()
	doc := Render(q, sampleProfile(), sampleClient())
	require.Len(t, doc.Items, len(q.Items))
	for i, it := range q.Items {
		assert.Equal(t, it.Name, doc.Items[i].Name)
		assert.Equal(t, it.Quantity, doc.Items[i].Quantity)
		assert.Equal(t, PtBR.Money(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))), doc.Items[i].LineTotal)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Orcamento_1001_Joao_Pedro_Alves.pdf", Filename("1001", " Joao \t Pedro\nAlves "))
	assert.Equal(t, "Orcamento_1001.pdf", Filename("1001", ""))
	assert.Equal(t, "Orcamento_1001_A_B.pdf", Filename("1001", "A/B"))
}

func TestExportPDF(t *testing.T) {
	doc := Render(sampleQuote(), sampleProfile(), sampleClient())

	var buf bytes.Buffer
	err := ExportPDF(doc, &buf, PDFOptions{CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "Ensaio Gestante")
	assert.Contains(t, string(out), "Hora extra")
	assert.Contains(t, string(out), "TOTAL FINAL:")
}

func TestExportPDF_Degraded(t *testing.T) {
	doc := Render(entities.Quote{Number: "1"}, nil, nil)
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(PtBR, PDFOptions{Compress: true}).ExportPDF(doc, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportPDF_ManyItemsSpillsOverPages(t *testing.T) {
	q := sampleQuote()
	for i := 0; i < 60; i++ {
		q.Items = append(q.Items, entities.QuoteItem{ID: "x", Name: "Foto avulsa", UnitPrice: decimal.NewFromInt(10), Quantity: 1, Type: entities.ItemTypePackage})
	}
	var buf bytes.Buffer
	require.NoError(t, ExportPDF(Render(q, sampleProfile(), sampleClient()), &buf, PDFOptions{}))
	assert.Greater(t, buf.Len(), 0)
}
