package entities

import "strings"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - The set is closed; ParseQuoteStatus rejects anything else.
//   - Approved and Declined are terminal for the client-facing flow only.
//     Nothing in the domain blocks a later transition out of them.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusDeclined QuoteStatus = "declined"
)

var quoteStatusLabels = map[QuoteStatus]string{
	QuoteStatusDraft:    "Rascunho",
	QuoteStatusSent:     "Enviado",
	QuoteStatusViewed:   "Visualizado",
	QuoteStatusApproved: "Aprovado",
	QuoteStatusDeclined: "Recusado",
}

// ParseQuoteStatus accepts the persisted value, case-insensitively.
func ParseQuoteStatus(v string) (QuoteStatus, bool) {
	s := QuoteStatus(strings.ToLower(strings.TrimSpace(v)))
	_, ok := quoteStatusLabels[s]
	return s, ok
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteStatusLabels[s]
	return ok
}

// Label is the customer-facing name.
func (s QuoteStatus) Label() string {
	return quoteStatusLabels[s]
}

// ItemType only changes how a line is labelled.
type ItemType string

const (
	ItemTypePackage ItemType = "package"
	ItemTypeHourly  ItemType = "hourly"
	ItemTypeDaily   ItemType = "daily"
)

var itemTypeLabels = map[ItemType]string{
	ItemTypePackage: "Pacote",
	ItemTypeHourly:  "Hora",
	ItemTypeDaily:   "Diária",
}

func ParseItemType(v string) (ItemType, bool) {
	t := ItemType(strings.ToLower(strings.TrimSpace(v)))
	_, ok := itemTypeLabels[t]
	return t, ok
}

func (t ItemType) Label() string {
	return itemTypeLabels[t]
}

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCash     PaymentMethod = "cash"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodPix:      "Pix",
	PaymentMethodCard:     "Cartão de Crédito",
	PaymentMethodTransfer: "Transferência",
	PaymentMethodCash:     "Dinheiro",
}

func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(v)))
	_, ok := paymentMethodLabels[m]
	return m, ok
}

func (m PaymentMethod) Label() string {
	return paymentMethodLabels[m]
}
