package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
)

// CompanyUser is a collaborator account scoped to one company.
type CompanyUser struct {
	id           uint
	companyID    uint
	email        string
	passwordHash string
	username     string
	role         user.Role
	active       bool
	selfieURL    *string
	phone        *string
	createdAt    time.Time
}

type CompanyUserParams struct {
	CompanyID    uint
	Email        string
	PasswordHash string
	Username     string
	Role         user.Role
	Active       bool
	SelfieURL    *string
	Phone        *string
}

func NewCompanyUser(p CompanyUserParams) (*CompanyUser, error) {
	if p.CompanyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(p.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if p.PasswordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	role := p.Role
	if role != user.RoleCompanyOperator {
		role = user.RoleCompanyUser
	}

	return &CompanyUser{
		companyID:    p.CompanyID,
		email:        strings.TrimSpace(p.Email),
		passwordHash: p.PasswordHash,
		username:     strings.TrimSpace(p.Username),
		role:         role,
		active:       p.Active,
		selfieURL:    p.SelfieURL,
		phone:        p.Phone,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructCompanyUser(id uint, p CompanyUserParams, createdAt time.Time) *CompanyUser {
	return &CompanyUser{
		id:           id,
		companyID:    p.CompanyID,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		username:     p.Username,
		role:         p.Role,
		active:       p.Active,
		selfieURL:    p.SelfieURL,
		phone:        p.Phone,
		createdAt:    createdAt,
	}
}

func (u *CompanyUser) ID() uint             { return u.id }
func (u *CompanyUser) CompanyID() uint      { return u.companyID }
func (u *CompanyUser) Email() string        { return u.email }
func (u *CompanyUser) PasswordHash() string { return u.passwordHash }
func (u *CompanyUser) Username() string     { return u.username }
func (u *CompanyUser) Role() user.Role      { return u.role }
func (u *CompanyUser) IsActive() bool       { return u.active }
func (u *CompanyUser) SelfieURL() *string   { return u.selfieURL }
func (u *CompanyUser) Phone() *string       { return u.phone }
func (u *CompanyUser) CreatedAt() time.Time { return u.createdAt }

func (u *CompanyUser) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("company user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company user ID cannot be zero")
	}
	u.id = id
	return nil
}
