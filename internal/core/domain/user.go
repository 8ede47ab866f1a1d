package domain

// IssuerProfile is the business identity printed on rendered invoices.
// All fields are optional; one profile exists per account.
type IssuerProfile struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
}

// Lines returns the non-empty profile fields in print order.
func (p IssuerProfile) Lines() []string {
	lines := make([]string, 0, 4)
	for _, v := range []string{p.BusinessName, p.BusinessAddress, p.BusinessPhone, p.BusinessEmail} {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

// User represents an account of the application in the domain.
type User struct {
	UserID       string        `json:"userID"` // Primary Key (UUID)
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Profile      IssuerProfile `json:"profile"`
	AuditFields
}
