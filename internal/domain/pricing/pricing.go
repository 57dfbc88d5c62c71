// Package pricing computes quote totals.
//
// Everything here is pure: no I/O, no caching. Callers re-run Compute after
// every change to items, discount or fees; the inputs are always small.
package pricing

import (
	"focusquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals is the result of a pricing run.
type Totals struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal is unitPrice * quantity for a single item.
func LineTotal(item entities.QuoteItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Compute returns subtotal = Σ unitPrice·quantity and
// total = subtotal − discount + extraFees.
//
// There is no floor at zero: a misconfigured quote may produce a negative
// total, which is surfaced as-is.
func Compute(items []entities.QuoteItem, discount, extraFees decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it))
	}
	return Totals{
		Subtotal: subtotal,
		Total:    subtotal.Sub(discount).Add(extraFees),
	}
}

// Apply recomputes q.Total in place and returns the totals used.
func Apply(q *entities.Quote) Totals {
	t := Compute(q.Items, q.Discount, q.ExtraFees)
	q.Total = t.Total
	return t
}
