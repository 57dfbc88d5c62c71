package repository

import (
	"fmt"
	"strings"
	"time"

	"focusquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// quoteRecord is the persisted shape of a quote. Amounts are decimal strings
// on write; JSON numbers written by older clients are accepted on read.
type quoteRecord struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	ClientID          string          `json:"clientId"`
	Date              string          `json:"date"`
	ValidUntil        string          `json:"validUntil"`
	Status            string          `json:"status"`
	Items             []itemRecord    `json:"items"`
	Discount          decimal.Decimal `json:"discount"`
	ExtraFees         decimal.Decimal `json:"extraFees"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentConditions string          `json:"paymentConditions"`
	Notes             string          `json:"notes,omitempty"`
	Total             decimal.Decimal `json:"total"`
}

type itemRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	rec := quoteRecord{
		ID:                q.ID,
		Number:            q.Number,
		ClientID:          q.ClientID,
		Date:              formatDate(q.Date),
		ValidUntil:        formatDate(q.ValidUntil),
		Status:            string(q.Status),
		Items:             make([]itemRecord, 0, len(q.Items)),
		Discount:          q.Discount,
		ExtraFees:         q.ExtraFees,
		PaymentMethod:     string(q.PaymentMethod),
		PaymentConditions: q.PaymentConditions,
		Notes:             q.Notes,
		Total:             q.Total,
	}
	for _, it := range q.Items {
		rec.Items = append(rec.Items, itemRecord{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Type:        string(it.Type),
		})
	}
	return rec
}

func fromQuoteRecord(rec quoteRecord) (entities.Quote, error) {
	date, err := parseDate(rec.Date)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: date: %w", rec.ID, err)
	}
	validUntil, err := parseDate(rec.ValidUntil)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: validUntil: %w", rec.ID, err)
	}
	status, ok := parseStatus(rec.Status)
	if !ok {
		return entities.Quote{}, fmt.Errorf("quote %s: unknown status %q", rec.ID, rec.Status)
	}
	method, ok := parsePaymentMethod(rec.PaymentMethod)
	if !ok {
		return entities.Quote{}, fmt.Errorf("quote %s: unknown payment method %q", rec.ID, rec.PaymentMethod)
	}

	q := entities.Quote{
		ID:                rec.ID,
		Number:            rec.Number,
		ClientID:          rec.ClientID,
		Date:              date,
		ValidUntil:        validUntil,
		Status:            status,
		Items:             make([]entities.QuoteItem, 0, len(rec.Items)),
		Discount:          rec.Discount,
		ExtraFees:         rec.ExtraFees,
		PaymentMethod:     method,
		PaymentConditions: rec.PaymentConditions,
		Notes:             rec.Notes,
		Total:             rec.Total,
	}
	for _, it := range rec.Items {
		typ, ok := parseItemType(it.Type)
		if !ok {
			return entities.Quote{}, fmt.Errorf("quote %s item %s: unknown type %q", rec.ID, it.ID, it.Type)
		}
		q.Items = append(q.Items, entities.QuoteItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Type:        typ,
		})
	}
	return q, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// parseDate reads plain dates and full ISO timestamps.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Older collections carry display labels instead of codes.
var (
	legacyStatuses = map[string]entities.QuoteStatus{
		"rascunho":    entities.QuoteStatusDraft,
		"enviado":     entities.QuoteStatusSent,
		"visualizado": entities.QuoteStatusViewed,
		"aprovado":    entities.QuoteStatusApproved,
		"recusado":    entities.QuoteStatusDeclined,
	}
	legacyItemTypes = map[string]entities.ItemType{
		"pacote": entities.ItemTypePackage,
		"hora":   entities.ItemTypeHourly,
		"diária": entities.ItemTypeDaily,
	}
	legacyPaymentMethods = map[string]entities.PaymentMethod{
		"cartão de crédito": entities.PaymentMethodCard,
		"transferência":     entities.PaymentMethodTransfer,
		"dinheiro":          entities.PaymentMethodCash,
	}
)

func parseStatus(v string) (entities.QuoteStatus, bool) {
	if s, ok := entities.ParseQuoteStatus(v); ok {
		return s, true
	}
	s, ok := legacyStatuses[strings.ToLower(strings.TrimSpace(v))]
	return s, ok
}

func parseItemType(v string) (entities.ItemType, bool) {
	if v == "" {
		return entities.ItemTypePackage, true
	}
	if t, ok := entities.ParseItemType(v); ok {
		return t, true
	}
	t, ok := legacyItemTypes[strings.ToLower(strings.TrimSpace(v))]
	return t, ok
}

func parsePaymentMethod(v string) (entities.PaymentMethod, bool) {
	if v == "" {
		return entities.PaymentMethodPix, true
	}
	if m, ok := entities.ParsePaymentMethod(v); ok {
		return m, true
	}
	m, ok := legacyPaymentMethods[strings.ToLower(strings.TrimSpace(v))]
	return m, ok
}
