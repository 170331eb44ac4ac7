package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
)

type mockCompanyRepository struct {
	CreateFunc        func(ctx context.Context, c *company.Company) error
	FindByIDFunc      func(ctx context.Context, id uint) (*company.Company, error)
	FindByOwnerIDFunc func(ctx context.Context, ownerID uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
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

type mockCompanyUserRepository struct {
	CreateFunc func(ctx context.Context, u *company.CompanyUser) error
	created    []*company.CompanyUser
}

func (m *mockCompanyUserRepository) Create(ctx context.Context, u *company.CompanyUser) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, u); err != nil {
			return err
		}
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockCompanyUserRepository) FindActiveByEmail(ctx context.Context, email string) (*company.CompanyUser, error) {
	return nil, nil
}

func (m *mockCompanyUserRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	return int64(len(m.created)), nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}

type mockTicketRepository struct {
	CountFunc func(ctx context.Context, filter ticket.TicketFilter) (int64, error)

	mu      sync.Mutex
	filters []ticket.TicketFilter
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByIDForCompany(ctx context.Context, id, companyID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) Count(ctx context.Context, filter ticket.TicketFilter) (int64, error) {
	m.mu.Lock()
	m.filters = append(m.filters, filter)
	m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

type plainHasher struct {
	err error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

var (
	errDB        = fmt.Errorf("connection refused")
	errDuplicate = fmt.Errorf("ERROR: duplicate key value violates unique constraint \"company_users_email_key\"")
)

func strPtr(s string) *string { return &s }

func isCompanyScoped(f ticket.TicketFilter, id uint) bool {
	return f.CompanyID != nil && *f.CompanyID == id
}
