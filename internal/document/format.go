package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Locale holds the currency and date conventions used when formatting.
type Locale struct {
	CurrencySymbol string
	ThousandsSep   string
	DecimalSep     string
	DateLayout     string
}

// PtBR matches how the documents have always been printed: R$ 1.234,56 and
// day/month/year dates.
var PtBR = Locale{
	CurrencySymbol: "R$",
	ThousandsSep:   ".",
	DecimalSep:     ",",
	DateLayout:     "02/01/2006",
}

// Money formats d with exactly two fractional digits.
func (l Locale) Money(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	if l.CurrencySymbol != "" {
		b.WriteString(l.CurrencySymbol)
		b.WriteByte(' ')
	}
	b.WriteString(group(intPart, l.ThousandsSep))
	b.WriteString(l.DecimalSep)
	b.WriteString(frac)
	return b.String()
}

// Date renders an empty string for the zero time.
func (l Locale) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(l.DateLayout)
}

func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	head := len(digits) % 3
	var b strings.Builder
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
