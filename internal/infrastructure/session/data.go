// Package session keeps per-browser login state on the server. The browser
// only holds a signed token naming the server-side record.
package session

import "github.com/EDUARX24/Tickets-AI/internal/domain/user"

// Data is the state written at login.
type Data struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	CompanyID *uint     `json:"company_id,omitempty"`
}

func (d *Data) HasCompany() bool {
	return d != nil && d.CompanyID != nil && *d.CompanyID != 0
}

// Company returns the linked company id or 0.
func (d *Data) Company() uint {
	if !d.HasCompany() {
		return 0
	}
	return *d.CompanyID
}

func (d *Data) LinkCompany(companyID uint) {
	id := companyID
	d.CompanyID = &id
}
