package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
}

// NewUser builds an account that has not been stored yet.
func NewUser(username, email, passwordHash string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now().UTC(),
	}, nil
}

// ReconstructUser rebuilds a stored account. Unknown roles are kept as they are
// so that rows edited by hand stay readable.
func ReconstructUser(id uint, username, email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// DisplayName is the name shown in the navbar.
func (u *User) DisplayName() string {
	if u.username != "" {
		return u.username
	}
	return u.email
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
