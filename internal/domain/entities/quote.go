package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the priced proposal sent from the photographer to a client.
//
// Storage model:
//   - One record per owner holds the owner's whole quote list
//     (most recent first) and is replaced wholesale on every write.
//
// Monetary representation:
//   - All amounts are decimals; rounding happens only when formatting.
//   - Total is derived from Items, Discount and ExtraFees. It is recomputed
//     on every mutation and on every load and is never edited directly.
type Quote struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	ClientID          string          `json:"client_id"`
	Date              time.Time       `json:"date"`
	ValidUntil        time.Time       `json:"valid_until"`
	Status            QuoteStatus     `json:"status"`
	Items             []QuoteItem     `json:"items"`
	Discount          decimal.Decimal `json:"discount"`
	ExtraFees         decimal.Decimal `json:"extra_fees"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentConditions string          `json:"payment_conditions"`
	Notes             string          `json:"notes,omitempty"`
	Total             decimal.Decimal `json:"total"`
}

// QuoteItem is one priced line. Order inside Quote.Items is display order.
type QuoteItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Type        ItemType        `json:"type"`
}

// Clone returns a copy that shares no item slice with q.
func (q Quote) Clone() Quote {
	out := q
	if q.Items != nil {
		out.Items = make([]QuoteItem, len(q.Items))
		copy(out.Items, q.Items)
	}
	return out
}

// ItemIndex returns the position of the item with the given id, or -1.
func (q Quote) ItemIndex(itemID string) int {
	for i, it := range q.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
