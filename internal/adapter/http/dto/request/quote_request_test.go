package request

import (
	"errors"
	"testing"
	"time"

	"focusquote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestQuoteRequest_ToInput(t *testing.T) {
	r := QuoteRequest{
		ClientID:   " c-1 ",
		Date:       "2026-10-16",
		ValidUntil: "2026-10-31T15:00:00-03:00",
		Items: []ItemRequest{
			{ID: " i-1 ", Name: "Ensaio", UnitPrice: decimal.NewFromInt(300), Quantity: 2, Type: "hourly"},
			{Name: "Álbum", UnitPrice: decimal.RequireFromString("99.90"), Quantity: 1},
		},
		Discount:      decimal.NewFromInt(10),
		PaymentMethod: "card",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "c-1" {
		t.Fatalf("expected trimmed client id, got %q", in.ClientID)
	}
	if !in.Date.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", in.Date)
	}
	if !in.ValidUntil.Equal(time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected valid until %s", in.ValidUntil)
	}
	if len(in.Items) != 2 || in.Items[0].ID != "i-1" || in.Items[0].Type != entities.ItemTypeHourly {
		t.Fatalf("unexpected items %+v", in.Items)
	}
	if in.Items[1].Type != "" || !in.Items[1].UnitPrice.Equal(decimal.RequireFromString("99.9")) {
		t.Fatalf("unexpected second item %+v", in.Items[1])
	}
	if in.PaymentMethod != entities.PaymentMethodCard || !in.Discount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected financials %+v", in)
	}
}

func TestQuoteRequest_ToInputKeepsOmittedDates(t *testing.T) {
	in, err := QuoteRequest{ClientID: "c-1"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Date.IsZero() || !in.ValidUntil.IsZero() {
		t.Fatalf("expected zero dates, got %s %s", in.Date, in.ValidUntil)
	}
}

func TestQuoteRequest_ToInputInvalidDate(t *testing.T) {
	_, err := QuoteRequest{ClientID: "c-1", Date: "16/10/2026"}.ToInput()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestQuoteRequest_BindingRules(t *testing.T) {
	v := bindingValidator()

	valid := QuoteRequest{ClientID: "c-1", Items: []ItemRequest{{Quantity: 1}}}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	invalid := QuoteRequest{
		Items:         []ItemRequest{{Quantity: 1}, {Quantity: 0, Type: "weekly"}},
		PaymentMethod: "cheque",
	}
	details := ValidationDetails(v.Struct(invalid))
	want := map[string]string{
		"ClientID":          "required",
		"Items[1].Quantity": "required",
		"Items[1].Type":     "oneof",
		"PaymentMethod":     "oneof",
	}
	if len(details) != len(want) {
		t.Fatalf("expected %d failing fields, got %v", len(want), details)
	}
	for field, tag := range want {
		if details[field] != tag {
			t.Fatalf("expected %s to fail %s, got %v", field, tag, details[field])
		}
	}
}

func TestValidationDetails_NonValidationError(t *testing.T) {
	if got := ValidationDetails(errors.New("unexpected EOF")); got != nil {
		t.Fatalf("expected nil details, got %v", got)
	}
}

func TestListQueryAndPublicQuery(t *testing.T) {
	v := bindingValidator()

	if err := v.Struct(ListQuery{Status: "sent"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Struct(ListQuery{Status: "lost"}); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
	f := ListQuery{Status: "approved", Search: "maria"}.ToFilter()
	if f.Status != entities.QuoteStatusApproved || f.Search != "maria" {
		t.Fatalf("unexpected filter %+v", f)
	}

	if err := v.Struct(PublicQuoteQuery{View: "admin"}); err == nil {
		t.Fatalf("expected view other than public to fail")
	}
	ref := PublicQuoteQuery{View: "public", QuoteID: "q", OwnerID: "u", Token: "t"}.ToRef()
	if ref.QuoteID != "q" || ref.OwnerID != "u" || ref.Token != "t" {
		t.Fatalf("unexpected ref %+v", ref)
	}
}
