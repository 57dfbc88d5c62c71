package response

import (
	"time"

	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/pricing"
	"focusquote/internal/usecase"
)

const dateLayout = "2006-01-02"

type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
	LineTotal   string `json:"line_total"`
}

// QuoteResponse carries amounts as fixed two-decimal strings.
type QuoteResponse struct {
	ID                string         `json:"id"`
	Number            string         `json:"number"`
	ClientID          string         `json:"client_id"`
	Date              string         `json:"date"`
	ValidUntil        string         `json:"valid_until"`
	Status            string         `json:"status"`
	StatusLabel       string         `json:"status_label"`
	Items             []ItemResponse `json:"items"`
	Subtotal          string         `json:"subtotal"`
	Discount          string         `json:"discount"`
	ExtraFees         string         `json:"extra_fees"`
	Total             string         `json:"total"`
	PaymentMethod     string         `json:"payment_method"`
	PaymentConditions string         `json:"payment_conditions"`
	Notes             string         `json:"notes,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	totals := pricing.Compute(q.Items, q.Discount, q.ExtraFees)
	out := QuoteResponse{
		ID:                q.ID,
		Number:            q.Number,
		ClientID:          q.ClientID,
		Date:              formatDate(q.Date),
		ValidUntil:        formatDate(q.ValidUntil),
		Status:            string(q.Status),
		StatusLabel:       q.Status.Label(),
		Items:             make([]ItemResponse, 0, len(q.Items)),
		Subtotal:          totals.Subtotal.StringFixed(2),
		Discount:          q.Discount.StringFixed(2),
		ExtraFees:         q.ExtraFees.StringFixed(2),
		Total:             totals.Total.StringFixed(2),
		PaymentMethod:     string(q.PaymentMethod),
		PaymentConditions: q.PaymentConditions,
		Notes:             q.Notes,
	}
	for _, it := range q.Items {
		out.Items = append(out.Items, ItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Quantity:    it.Quantity,
			Type:        string(it.Type),
			LineTotal:   pricing.LineTotal(it).StringFixed(2),
		})
	}
	return out
}

type CommitResponse struct {
	Quote    QuoteResponse `json:"quote"`
	Created  bool          `json:"created"`
	Warnings []string      `json:"warnings"`
}

func FromCommit(res usecase.CommitResult) CommitResponse {
	out := CommitResponse{
		Quote:    FromQuote(res.Quote),
		Created:  res.Created,
		Warnings: make([]string, 0, len(res.Warnings)),
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, string(w))
	}
	return out
}

type QuoteSummaryResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Total       string `json:"total"`
}

func FromSummary(s usecase.QuoteSummary) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		ID:          s.Quote.ID,
		Number:      s.Quote.Number,
		ClientID:    s.Quote.ClientID,
		ClientName:  s.ClientName,
		Date:        formatDate(s.Quote.Date),
		Status:      string(s.Quote.Status),
		StatusLabel: s.Quote.Status.Label(),
		Total:       s.Quote.Total.StringFixed(2),
	}
}

func FromSummaries(in []usecase.QuoteSummary) []QuoteSummaryResponse {
	out := make([]QuoteSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSummary(s))
	}
	return out
}

type DashboardResponse struct {
	Total         int                    `json:"total"`
	Approved      int                    `json:"approved"`
	Pending       int                    `json:"pending"`
	Revenue       string                 `json:"revenue"`
	MonthRevenue  string                 `json:"month_revenue"`
	MonthlyGoal   string                 `json:"monthly_goal"`
	GoalProgress  int                    `json:"goal_progress"`
	GoalRemaining string                 `json:"goal_remaining"`
	Recent        []QuoteSummaryResponse `json:"recent"`
}

func FromDashboard(s usecase.DashboardStats) DashboardResponse {
	return DashboardResponse{
		Total:         s.Total,
		Approved:      s.Approved,
		Pending:       s.Pending,
		Revenue:       s.Revenue.StringFixed(2),
		MonthRevenue:  s.MonthRevenue.StringFixed(2),
		MonthlyGoal:   s.MonthlyGoal.StringFixed(2),
		GoalProgress:  s.GoalProgress,
		GoalRemaining: s.GoalRemaining.StringFixed(2),
		Recent:        FromSummaries(s.Recent),
	}
}

type ShareResponse struct {
	PublicURL   string `json:"public_url"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

func FromShare(s usecase.ShareLink) ShareResponse {
	return ShareResponse{
		PublicURL:   s.PublicURL,
		Phone:       s.Phone,
		Message:     s.Message,
		WhatsAppURL: s.WhatsAppURL,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
