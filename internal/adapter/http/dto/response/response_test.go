package response

import (
	"testing"
	"time"

	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/lifecycle"
	"focusquote/internal/usecase"

	"github.com/shopspring/decimal"
)

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:         "q-1",
		Number:     "1001",
		ClientID:   "c-1",
		Date:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		Status:     entities.QuoteStatusViewed,
		Items: []entities.QuoteItem{
			{ID: "i-1", Name: "Ensaio", UnitPrice: decimal.RequireFromString("300.5"), Quantity: 2, Type: entities.ItemTypePackage},
		},
		Discount:      decimal.NewFromInt(1),
		ExtraFees:     decimal.Zero,
		PaymentMethod: entities.PaymentMethodPix,
		Total:         decimal.NewFromInt(9999),
	}
}

func TestFromQuote(t *testing.T) {
	got := FromQuote(sampleQuote())

	if got.Date != "2026-10-01" || got.ValidUntil != "2026-10-16" {
		t.Fatalf("unexpected dates %s %s", got.Date, got.ValidUntil)
	}
	if got.Status != "viewed" || got.StatusLabel != "Visualizado" {
		t.Fatalf("unexpected status %s/%s", got.Status, got.StatusLabel)
	}
	if got.Subtotal != "601.00" || got.Discount != "1.00" || got.ExtraFees != "0.00" {
		t.Fatalf("unexpected amounts %+v", got)
	}
	if got.Total != "600.00" {
		t.Fatalf("total must be derived from items, got %s", got.Total)
	}
	if len(got.Items) != 1 || got.Items[0].UnitPrice != "300.50" || got.Items[0].LineTotal != "601.00" {
		t.Fatalf("unexpected items %+v", got.Items)
	}
}

func TestFromQuote_EmptyItemsAndDates(t *testing.T) {
	got := FromQuote(entities.Quote{ID: "q"})
	if got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("expected empty item list, got %v", got.Items)
	}
	if got.Date != "" || got.Total != "0.00" {
		t.Fatalf("unexpected zero values %+v", got)
	}
}

func TestFromCommit(t *testing.T) {
	got := FromCommit(usecase.CommitResult{
		Quote:    sampleQuote(),
		Warnings: []lifecycle.Warning{lifecycle.WarningEditingApproved},
	})
	if got.Created || len(got.Warnings) != 1 || got.Warnings[0] != "editing_approved_quote" {
		t.Fatalf("unexpected commit response %+v", got)
	}

	got = FromCommit(usecase.CommitResult{Quote: sampleQuote(), Created: true})
	if got.Warnings == nil {
		t.Fatalf("warnings must serialize as an empty list")
	}
}

func TestFromDashboard(t *testing.T) {
	got := FromDashboard(usecase.DashboardStats{
		Total:         3,
		Approved:      1,
		Pending:       2,
		Revenue:       decimal.NewFromInt(570),
		MonthRevenue:  decimal.NewFromInt(570),
		MonthlyGoal:   decimal.NewFromInt(5000),
		GoalProgress:  11,
		GoalRemaining: decimal.NewFromInt(4430),
		Recent:        []usecase.QuoteSummary{{Quote: sampleQuote(), ClientName: "Maria"}},
	})
	if got.Revenue != "570.00" || got.MonthlyGoal != "5000.00" || got.GoalRemaining != "4430.00" {
		t.Fatalf("unexpected amounts %+v", got)
	}
	if len(got.Recent) != 1 || got.Recent[0].ClientName != "Maria" || got.Recent[0].Total != "9999.00" {
		t.Fatalf("unexpected recent %+v", got.Recent)
	}
}

func TestFromPublicDocument(t *testing.T) {
	for status, want := range map[entities.QuoteStatus]bool{
		entities.QuoteStatusViewed:   true,
		entities.QuoteStatusDeclined: true,
		entities.QuoteStatusApproved: false,
	} {
		q := sampleQuote()
		q.Status = status
		got := FromPublicDocument(usecase.PublicDocument{
			Resolution: usecase.Resolution{Quote: q},
			Document:   document.Render(q, nil, nil),
		})
		if got.CanApprove != want {
			t.Fatalf("%s: expected can_approve=%v", status, want)
		}
		if got.Document.Header.QuoteNumber != "1001" || got.QuoteID != "q-1" {
			t.Fatalf("unexpected response %+v", got)
		}
	}
}
