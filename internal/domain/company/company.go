package company

import (
	"fmt"
	"strings"
	"time"
)

// Profile holds the optional contact and address fields of a company.
type Profile struct {
	CommercialName *string
	BusinessName   *string
	CountryCode    *string
	CountryNumber  *string
	PhoneNumber    *string
	City           *string
	StateProvince  *string
	AddressPrimary *string
	Website        *string
	ImageURL       *string
}

// Company is a tenant. It is owned by the client admin who registered it.
type Company struct {
	id        uint
	name      string
	profile   Profile
	active    bool
	ownerID   uint
	createdAt time.Time
}

func NewCompany(name string, profile Profile, active bool, ownerID uint) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Company{
		name:      name,
		profile:   profile,
		active:    active,
		ownerID:   ownerID,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructCompany(id uint, name string, profile Profile, active bool, ownerID uint, createdAt time.Time) *Company {
	return &Company{
		id:        id,
		name:      name,
		profile:   profile,
		active:    active,
		ownerID:   ownerID,
		createdAt: createdAt,
	}
}

func (c *Company) ID() uint             { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Profile() Profile     { return c.profile }
func (c *Company) IsActive() bool       { return c.active }
func (c *Company) OwnerID() uint        { return c.ownerID }
func (c *Company) CreatedAt() time.Time { return c.createdAt }

// DisplayName prefers the commercial name and falls back to the legal name.
// It returns "" when neither is set.
func (c *Company) DisplayName() string {
	if c.profile.CommercialName != nil && strings.TrimSpace(*c.profile.CommercialName) != "" {
		return *c.profile.CommercialName
	}
	return c.name
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}
