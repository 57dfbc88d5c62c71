package response

import (
	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/usecase"
)

// PublicQuoteResponse is what the client sees behind a public link. Only the
// rendered document is exposed, never the owner's client directory.
type PublicQuoteResponse struct {
	QuoteID     string            `json:"quote_id"`
	Status      string            `json:"status"`
	StatusLabel string            `json:"status_label"`
	CanApprove  bool              `json:"can_approve"`
	Document    document.Document `json:"document"`
}

func FromPublicDocument(pd usecase.PublicDocument) PublicQuoteResponse {
	q := pd.Resolution.Quote
	return PublicQuoteResponse{
		QuoteID:     q.ID,
		Status:      string(q.Status),
		StatusLabel: q.Status.Label(),
		CanApprove:  canApprove(q.Status),
		Document:    pd.Document,
	}
}

type PublicApprovalResponse struct {
	QuoteID     string `json:"quote_id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

func FromPublicApproval(q entities.Quote) PublicApprovalResponse {
	return PublicApprovalResponse{
		QuoteID:     q.ID,
		Number:      q.Number,
		Status:      string(q.Status),
		StatusLabel: q.Status.Label(),
	}
}

// A declined quote can still be approved by the client.
func canApprove(s entities.QuoteStatus) bool {
	return s != entities.QuoteStatusApproved
}
