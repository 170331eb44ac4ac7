package mappers

import (
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
)

func CompanyToModel(c *company.Company) *models.CompanyModel {
	p := c.Profile()
	return &models.CompanyModel{
		ID:             c.ID(),
		Name:           c.Name(),
		CommercialName: p.CommercialName,
		BusinessName:   p.BusinessName,
		CountryCode:    p.CountryCode,
		CountryNumber:  p.CountryNumber,
		PhoneNumber:    p.PhoneNumber,
		City:           p.City,
		StateProvince:  p.StateProvince,
		AddressPrimary: p.AddressPrimary,
		Website:        p.Website,
		ImageURL:       p.ImageURL,
		Active:         c.IsActive(),
		OwnerID:        c.OwnerID(),
		CreatedAt:      c.CreatedAt(),
	}
}

func CompanyToDomain(m *models.CompanyModel) *company.Company {
	if m == nil {
		return nil
	}
	profile := company.Profile{
		CommercialName: m.CommercialName,
		BusinessName:   m.BusinessName,
		CountryCode:    m.CountryCode,
		CountryNumber:  m.CountryNumber,
		PhoneNumber:    m.PhoneNumber,
		City:           m.City,
		StateProvince:  m.StateProvince,
		AddressPrimary: m.AddressPrimary,
		Website:        m.Website,
		ImageURL:       m.ImageURL,
	}
	return company.ReconstructCompany(m.ID, m.Name, profile, m.Active, m.OwnerID, m.CreatedAt)
}

func CompanyUserToModel(u *company.CompanyUser) *models.CompanyUserModel {
	return &models.CompanyUserModel{
		ID:           u.ID(),
		CompanyID:    u.CompanyID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Username:     u.Username(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
		SelfieURL:    u.SelfieURL(),
		PhoneNumber:  u.Phone(),
		CreatedAt:    u.CreatedAt(),
	}
}

func CompanyUserToDomain(m *models.CompanyUserModel) *company.CompanyUser {
	if m == nil {
		return nil
	}
	return company.ReconstructCompanyUser(m.ID, company.CompanyUserParams{
		CompanyID:    m.CompanyID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Username:     m.Username,
		Role:         user.Role(m.Role),
		Active:       m.Active,
		SelfieURL:    m.SelfieURL,
		Phone:        m.PhoneNumber,
	}, m.CreatedAt)
}
