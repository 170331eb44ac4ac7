package dto

import (
	"time"

	ticketdto "github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
)

// DashboardDTO is the system admin home screen.
type DashboardDTO struct {
	TotalTickets       int64
	TotalUsers         int64
	TotalCollaborators int64
	TotalCompanies     int64
	RecentTickets      []ticketdto.TicketRowDTO
}

// UserDTO is the projection shown in the user list. It never carries the
// password hash.
type UserDTO struct {
	ID            uint
	Username      string
	Email         string
	Role          string
	RoleLabel     string
	CreatedAt     time.Time
	CreatedAtText string
}

type CompanyDTO struct {
	ID             uint
	Name           string
	DisplayName    string
	CommercialName string
	BusinessName   string
	Phone          string
	City           string
	StateProvince  string
	Address        string
	Website        string
	ImageURL       string
	Active         bool
	OwnerID        uint
	CreatedAt      time.Time
	CreatedAtText  string
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:            u.ID(),
		Username:      u.Username(),
		Email:         u.Email(),
		Role:          u.Role().String(),
		RoleLabel:     u.Role().Label(),
		CreatedAt:     u.CreatedAt(),
		CreatedAtText: biztime.Format(u.CreatedAt(), biztime.DisplayLayout),
	}
}

func ToCompanyDTO(c *company.Company) CompanyDTO {
	p := c.Profile()
	return CompanyDTO{
		ID:             c.ID(),
		Name:           c.Name(),
		DisplayName:    c.DisplayName(),
		CommercialName: deref(p.CommercialName),
		BusinessName:   deref(p.BusinessName),
		Phone:          phone(p),
		City:           deref(p.City),
		StateProvince:  deref(p.StateProvince),
		Address:        deref(p.AddressPrimary),
		Website:        deref(p.Website),
		ImageURL:       deref(p.ImageURL),
		Active:         c.IsActive(),
		OwnerID:        c.OwnerID(),
		CreatedAt:      c.CreatedAt(),
		CreatedAtText:  biztime.Format(c.CreatedAt(), biztime.DisplayLayout),
	}
}

func phone(p company.Profile) string {
	number := deref(p.PhoneNumber)
	if number == "" {
		return ""
	}
	if code := deref(p.CountryCode); code != "" {
		return code + " " + number
	}
	return number
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
