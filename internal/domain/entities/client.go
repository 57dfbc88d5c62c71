package entities

// ClientType distinguishes individuals (PF) from companies (PJ).
type ClientType string

const (
	ClientTypePF ClientType = "PF"
	ClientTypePJ ClientType = "PJ"
)

// Client is owned by the client-records collaborator; quotes only reference it.
type Client struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	TaxID   string     `json:"taxId,omitempty"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Type    ClientType `json:"type"`
	Notes   string     `json:"notes,omitempty"`
}
