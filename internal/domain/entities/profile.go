package entities

import "github.com/shopspring/decimal"

// PhotographerProfile is the issuer identity printed on every document.
// DefaultTerms fills the notes block when a quote has none of its own.
type PhotographerProfile struct {
	Name         string          `json:"name"`
	StudioName   string          `json:"studioName,omitempty"`
	LogoURL      string          `json:"logoUrl,omitempty"`
	TaxID        string          `json:"taxId"`
	Phone        string          `json:"phone"`
	WhatsApp     string          `json:"whatsapp"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Website      string          `json:"website,omitempty"`
	Instagram    string          `json:"instagram,omitempty"`
	DefaultTerms string          `json:"defaultTerms"`
	MonthlyGoal  decimal.Decimal `json:"monthlyGoal"`
}

// DisplayName prefers the studio name.
func (p PhotographerProfile) DisplayName() string {
	if p.StudioName != "" {
		return p.StudioName
	}
	return p.Name
}
