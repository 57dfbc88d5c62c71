package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"focusquote/internal/domain/entities"
	"focusquote/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type ItemRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"max=200"`
	Description string          `json:"description" binding:"max=2000"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Type        string          `json:"type" binding:"omitempty,oneof=package hourly daily"`
}

// QuoteRequest is the full editable state of a quote. Omitted dates and
// payment fields keep their current (or default) values.
type QuoteRequest struct {
	ClientID          string          `json:"client_id" binding:"required"`
	Date              string          `json:"date"`
	ValidUntil        string          `json:"valid_until"`
	Items             []ItemRequest   `json:"items" binding:"required,min=1,dive"`
	Discount          decimal.Decimal `json:"discount"`
	ExtraFees         decimal.Decimal `json:"extra_fees"`
	PaymentMethod     string          `json:"payment_method" binding:"omitempty,oneof=pix card transfer cash"`
	PaymentConditions string          `json:"payment_conditions"`
	Notes             string          `json:"notes"`
}

func (r QuoteRequest) ToInput() (usecase.QuoteInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.QuoteInput{}, fmt.Errorf("date: %w", err)
	}
	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return usecase.QuoteInput{}, fmt.Errorf("valid_until: %w", err)
	}

	in := usecase.QuoteInput{
		ClientID:          strings.TrimSpace(r.ClientID),
		Date:              date,
		ValidUntil:        validUntil,
		Items:             make([]usecase.ItemInput, 0, len(r.Items)),
		Discount:          r.Discount,
		ExtraFees:         r.ExtraFees,
		PaymentMethod:     entities.PaymentMethod(r.PaymentMethod),
		PaymentConditions: r.PaymentConditions,
		Notes:             r.Notes,
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, usecase.ItemInput{
			ID:          strings.TrimSpace(it.ID),
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Type:        entities.ItemType(it.Type),
		})
	}
	return in, nil
}

// ListQuery filters GET /quotes.
type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=draft sent viewed approved declined"`
	Search string `form:"search" binding:"max=100"`
}

func (q ListQuery) ToFilter() usecase.ListFilter {
	return usecase.ListFilter{Status: entities.QuoteStatus(q.Status), Search: q.Search}
}

// PublicQuoteQuery is the query string of a public link:
// ?view=public&q=<quoteId>&u=<ownerId>[&t=<token>].
type PublicQuoteQuery struct {
	View    string `form:"view" binding:"omitempty,eq=public"`
	QuoteID string `form:"q"`
	OwnerID string `form:"u"`
	Token   string `form:"t"`
}

func (q PublicQuoteQuery) ToRef() usecase.PublicRef {
	return usecase.PublicRef{QuoteID: q.QuoteID, OwnerID: q.OwnerID, Token: q.Token}
}

// ValidationDetails lists the failing fields of a binding error, keyed by
// field path, for the error response body. It returns nil for errors that
// are not validation failures, such as malformed JSON.
func ValidationDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe)] = fe.Tag()
	}
	return details
}

// fieldPath drops the root struct name: QuoteRequest.Items[0].Quantity
// becomes Items[0].Quantity.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
