package domain

// Client is a saved billing contact. Invoices copy its fields at creation time
// and never reference it afterwards.
type Client struct {
	ClientID string `json:"clientID"`
	OwnerID  string `json:"ownerID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	AuditFields
}

// Snapshot returns the billing fields an invoice would capture from this client.
func (c Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{Name: c.Name, Email: c.Email, Address: c.Address}
}
