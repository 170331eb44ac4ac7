package usecases

import (
	"context"
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	FindByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	ExistsByUsernameOrEmailFunc func(ctx context.Context, username, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.ExistsByUsernameOrEmailFunc != nil {
		return m.ExistsByUsernameOrEmailFunc(ctx, username, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}

type mockCompanyRepository struct {
	FindByOwnerIDFunc func(ctx context.Context, ownerID uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*company.Company, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockCompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

// plainHasher stores passwords as "hashed:<password>".
type plainHasher struct {
	hashErr error
}

func (h *plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *plainHasher) Verify(password, hashed string) error {
	if hashed != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockMemberRepository struct {
	member *company.CompanyUser
	err    error
	email  string
}

func (m *mockMemberRepository) Create(ctx context.Context, u *company.CompanyUser) error { return nil }

func (m *mockMemberRepository) FindActiveByEmail(ctx context.Context, email string) (*company.CompanyUser, error) {
	m.email = email
	return m.member, m.err
}

func (m *mockMemberRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	return 0, nil
}
