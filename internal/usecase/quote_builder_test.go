package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/lifecycle"
	mock_interfaces "focusquote/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteBuilder_NewDraftDefaults(t *testing.T) {
	b := NewQuoteBuilder(nil, testBuilderOptions()...)
	d := b.Draft()

	if d.ID != "id-1" || d.Number != "4821" {
		t.Fatalf("unexpected identity: %s #%s", d.ID, d.Number)
	}
	if d.Status != entities.QuoteStatusDraft {
		t.Fatalf("expected draft status, got %s", d.Status)
	}
	if !d.Date.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected today, got %v", d.Date)
	}
	if !d.ValidUntil.Equal(time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected +15 days, got %v", d.ValidUntil)
	}
	if d.PaymentMethod != entities.PaymentMethodPix || d.PaymentConditions != DefaultPaymentConditions {
		t.Fatalf("unexpected payment defaults: %s %q", d.PaymentMethod, d.PaymentConditions)
	}
	if len(d.Items) != 0 || !d.Total.IsZero() {
		t.Fatalf("expected empty draft, got %d items total %s", len(d.Items), d.Total)
	}
}

func TestQuoteBuilder_RandomNumberHasFourDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := randomQuoteNumber()
		if len(n) != 4 || n[0] == '0' {
			t.Fatalf("unexpected quote number %q", n)
		}
	}
}

func TestQuoteBuilder_Items(t *testing.T) {
	b := NewQuoteBuilder(nil, testBuilderOptions()...)

	first := b.AddItem()
	second := b.AddItem()
	it := b.Draft().Items[0]
	if it.Quantity != 1 || !it.UnitPrice.IsZero() || it.Type != entities.ItemTypePackage {
		t.Fatalf("unexpected new item defaults: %+v", it)
	}

	steps := []struct {
		id    string
		field ItemField
		value any
	}{
		{first, ItemFieldName, "Ensaio"},
		{first, ItemFieldUnitPrice, "300"},
		{first, ItemFieldQuantity, 2},
		{second, ItemFieldName, "Hora extra"},
		{second, ItemFieldUnitPrice, 50.0},
		{second, ItemFieldType, "hourly"},
		{second, ItemFieldDescription, "por hora"},
	}
	for _, s := range steps {
		if err := b.UpdateItem(s.id, s.field, s.value); err != nil {
			t.Fatalf("update %s=%v: %v", s.field, s.value, err)
		}
	}
	if err := b.SetFinancials(decimal.NewFromInt(100), decimal.NewFromInt(20), entities.PaymentMethodCard, "à vista", "obs"); err != nil {
		t.Fatalf("set financials: %v", err)
	}

	d := b.Draft()
	if !d.Total.Equal(decimal.NewFromInt(570)) {
		t.Fatalf("expected total 570, got %s", d.Total)
	}
	if d.Items[1].Type != entities.ItemTypeHourly || d.Items[1].Description != "por hora" {
		t.Fatalf("unexpected second item: %+v", d.Items[1])
	}

	if err := b.RemoveItem(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	d = b.Draft()
	if len(d.Items) != 1 || d.Items[0].ID != second {
		t.Fatalf("unexpected items after remove: %+v", d.Items)
	}
	if !d.Total.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("expected negative total to surface, got %s", d.Total)
	}
}

func TestQuoteBuilder_UpdateItemRejects(t *testing.T) {
	b := NewQuoteBuilder(nil, testBuilderOptions()...)
	id := b.AddItem()

	cases := []struct {
		name  string
		id    string
		field ItemField
		value any
		want  error
	}{
		{"unknown item", "nope", ItemFieldName, "x", ErrItemNotFound},
		{"unknown field", id, ItemField("discount"), "x", ErrInvalidItemField},
		{"name type", id, ItemFieldName, 10, ErrInvalidItemValue},
		{"negative price", id, ItemFieldUnitPrice, -1, ErrInvalidItemValue},
		{"bad price text", id, ItemFieldUnitPrice, "abc", ErrInvalidItemValue},
		{"zero quantity", id, ItemFieldQuantity, 0, ErrInvalidItemValue},
		{"fractional quantity", id, ItemFieldQuantity, 1.5, ErrInvalidItemValue},
		{"quantity type", id, ItemFieldQuantity, "2", ErrInvalidItemValue},
		{"unknown type", id, ItemFieldType, "weekly", ErrInvalidItemValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := b.Draft()
			err := b.UpdateItem(tc.id, tc.field, tc.value)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if !reflect.DeepEqual(before, b.Draft()) {
				t.Fatalf("draft changed on rejected update")
			}
		})
	}
}

func TestQuoteBuilder_SetFinancialsRejects(t *testing.T) {
	b := NewQuoteBuilder(nil, testBuilderOptions()...)
	if err := b.SetFinancials(decimal.NewFromInt(-1), decimal.Zero, entities.PaymentMethodPix, "", ""); !errors.Is(err, ErrInvalidAdjustment) {
		t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
	}
	if err := b.SetFinancials(decimal.Zero, decimal.Zero, entities.PaymentMethod("boleto"), "", ""); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestQuoteBuilder_ReorderItems(t *testing.T) {
	b := NewQuoteBuilder(nil, testBuilderOptions()...)
	a, c, d := b.AddItem(), b.AddItem(), b.AddItem()

	if err := b.ReorderItems([]string{d, a}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got := []string{}
	for _, it := range b.Draft().Items {
		got = append(got, it.ID)
	}
	if !reflect.DeepEqual(got, []string{d, a, c}) {
		t.Fatalf("unexpected order %v", got)
	}
	if err := b.ReorderItems([]string{"missing"}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestQuoteBuilder_CommitValidation(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		b := NewQuoteBuilder(repo, testBuilderOptions()...)
		b.AddItem()
		before := b.Draft()

		_, err := b.Commit(context.Background(), "owner-1")
		if !errors.Is(err, ErrClientRequired) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrClientRequired, got %v", err)
		}
		if !reflect.DeepEqual(before, b.Draft()) {
			t.Fatalf("draft changed on failed commit")
		}
	})

	t.Run("no items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		b := NewQuoteBuilder(repo, testBuilderOptions()...)
		b.SetClient("c-1")

		_, err := b.Commit(context.Background(), "owner-1")
		if !errors.Is(err, ErrItemsRequired) {
			t.Fatalf("expected ErrItemsRequired, got %v", err)
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		b := NewQuoteBuilder(nil, testBuilderOptions()...)
		_, err := b.Commit(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})
}

func TestQuoteBuilder_CommitPrependsNewQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

	existing := storedQuote("old", entities.QuoteStatusSent)
	var saved entities.QuoteCollection
	expectUpdate(repo, "owner-1", collectionOf("owner-1", existing), &saved)

	b := NewQuoteBuilder(repo, testBuilderOptions()...)
	b.SetClient("c-1")
	id := b.AddItem()
	_ = b.UpdateItem(id, ItemFieldUnitPrice, decimal.NewFromInt(850))

	res, err := b.Commit(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created || len(res.Warnings) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.Quote.Total.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("expected total 850, got %s", res.Quote.Total)
	}
	if len(saved.Quotes) != 2 || saved.Quotes[0].ID != res.Quote.ID || saved.Quotes[1].ID != "old" {
		t.Fatalf("expected new quote first, got %+v", saved.Quotes)
	}
}

func TestQuoteBuilder_CommitReplacesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

	first := storedQuote("a", entities.QuoteStatusDraft)
	target := storedQuote("b", entities.QuoteStatusSent)
	last := storedQuote("c", entities.QuoteStatusDraft)
	start := collectionOf("owner-1", first, target, last)

	repo.EXPECT().Load(gomock.Any(), "owner-1").Return(start, nil)

	// the client viewed the quote between Edit and Commit
	viewed := target
	viewed.Status = entities.QuoteStatusViewed
	var saved entities.QuoteCollection
	expectUpdate(repo, "owner-1", collectionOf("owner-1", first, viewed, last), &saved)

	b := NewQuoteBuilder(repo, testBuilderOptions()...)
	if err := b.Edit(context.Background(), "owner-1", "b"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := b.UpdateItem("b-i1", ItemFieldQuantity, 3); err != nil {
		t.Fatalf("update: %v", err)
	}

	res, err := b.Commit(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatalf("expected update, not create")
	}
	if len(saved.Quotes) != 3 || saved.Quotes[1].ID != "b" {
		t.Fatalf("expected in-place replacement, got %+v", saved.Quotes)
	}
	if !saved.Quotes[1].Total.Equal(decimal.NewFromInt(870)) {
		t.Fatalf("expected recomputed total 870, got %s", saved.Quotes[1].Total)
	}
	if saved.Quotes[1].Status != entities.QuoteStatusViewed {
		t.Fatalf("builder must keep the stored status, got %s", saved.Quotes[1].Status)
	}
}

func TestQuoteBuilder_CommitEditingApprovedWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

	approved := storedQuote("a", entities.QuoteStatusApproved)
	repo.EXPECT().Load(gomock.Any(), "owner-1").Return(collectionOf("owner-1", approved), nil)
	expectUpdate(repo, "owner-1", collectionOf("owner-1", approved), nil)

	b := NewQuoteBuilder(repo, testBuilderOptions()...)
	if err := b.Edit(context.Background(), "owner-1", "a"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	b.SetClient("c-2")

	res, err := b.Commit(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Warnings, []lifecycle.Warning{lifecycle.WarningEditingApproved}) {
		t.Fatalf("expected editing warning, got %v", res.Warnings)
	}
	if res.Quote.Status != entities.QuoteStatusApproved || res.Quote.ClientID != "c-2" {
		t.Fatalf("unexpected committed quote: %+v", res.Quote)
	}
}

func TestQuoteBuilder_CommitDoesNotRecreateDeletedQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

	other := storedQuote("a", entities.QuoteStatusDraft)
	target := storedQuote("b", entities.QuoteStatusSent)
	repo.EXPECT().Load(gomock.Any(), "owner-1").Return(collectionOf("owner-1", other, target), nil)

	// the quote was deleted between Edit and Commit
	var saved entities.QuoteCollection
	expectUpdate(repo, "owner-1", collectionOf("owner-1", other), &saved)

	b := NewQuoteBuilder(repo, testBuilderOptions()...)
	if err := b.Edit(context.Background(), "owner-1", "b"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	b.SetClient("c-2")

	if _, err := b.Commit(context.Background(), "owner-1"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if saved.Quotes != nil {
		t.Fatalf("expected no write, got %+v", saved.Quotes)
	}
}

func TestQuoteBuilder_CommitRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().Update(gomock.Any(), "owner-1", gomock.Any()).Return(entities.QuoteCollection{}, errors.New("db"))

	b := NewQuoteBuilder(repo, testBuilderOptions()...)
	b.SetClient("c-1")
	b.AddItem()
	if _, err := b.Commit(context.Background(), "owner-1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestQuoteBuilder_Edit(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		b := NewQuoteBuilder(nil, testBuilderOptions()...)
		if err := b.Edit(context.Background(), "", "q"); !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
		if err := b.Edit(context.Background(), "o", " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "o").Return(collectionOf("o"), nil)

		b := NewQuoteBuilder(repo, testBuilderOptions()...)
		if err := b.Edit(context.Background(), "o", "q"); !errors.Is(err, ErrQuoteNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteBuilder_RenderAfterCommitKeepsEveryItem(t *testing.T) {
	backend := newMemoryBackend()
	b := NewQuoteBuilder(backend.repo, testBuilderOptions()...)
	b.SetClient("c-1")

	prices := []string{"850", "12.34", "0.10"}
	for i, p := range prices {
		id := b.AddItem()
		_ = b.UpdateItem(id, ItemFieldName, "Item "+p)
		_ = b.UpdateItem(id, ItemFieldUnitPrice, p)
		_ = b.UpdateItem(id, ItemFieldQuantity, i+1)
	}
	res, err := b.Commit(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	c, err := backend.repo.Load(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	stored, _ := c.Find(res.Quote.ID)
	doc := document.Render(stored, nil, nil)
	if len(doc.Items) != len(prices) {
		t.Fatalf("expected %d rows, got %d", len(prices), len(doc.Items))
	}
	for i, it := range stored.Items {
		row := doc.Items[i]
		want := document.PtBR.Money(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		if row.Name != it.Name || row.Quantity != it.Quantity || row.LineTotal != want {
			t.Fatalf("row %d mismatch: %+v vs %+v", i, row, it)
		}
	}
}
