package usecases

import (
	"context"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
)

type mockTicketRepository struct {
	ListFunc  func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountFunc func(ctx context.Context, filter ticket.TicketFilter) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByIDForCompany(ctx context.Context, id, companyID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Count(ctx context.Context, filter ticket.TicketFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

type mockUserRepository struct {
	ListFunc        func(ctx context.Context) ([]*user.User, error)
	CountFunc       func(ctx context.Context) (int64, error)
	CountByRoleFunc func(ctx context.Context, role user.Role) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, role)
	}
	return 0, nil
}

type mockCompanyRepository struct {
	ListFunc      func(ctx context.Context) ([]*company.Company, error)
	CountFunc     func(ctx context.Context) (int64, error)
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]*company.Company, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockReferenceRepository struct {
	categories map[int]ticket.Category
	priorities map[int]ticket.Priority
	err        error
	calls      int
}

func (m *mockReferenceRepository) ListCategories(ctx context.Context) ([]ticket.Category, error) {
	return nil, nil
}

func (m *mockReferenceRepository) ListPriorities(ctx context.Context) ([]ticket.Priority, error) {
	return nil, nil
}

func (m *mockReferenceRepository) CategoriesByIDs(ctx context.Context, ids []int) (map[int]ticket.Category, error) {
	m.calls++
	return m.categories, m.err
}

func (m *mockReferenceRepository) PrioritiesByIDs(ctx context.Context, ids []int) (map[int]ticket.Priority, error) {
	m.calls++
	return m.priorities, m.err
}

func intPtr(i int) *int { return &i }

func makeTicket(id, companyID uint, title string, category, priority *int, status vo.TicketStatus) *ticket.Ticket {
	return ticket.ReconstructTicket(ticket.ReconstructParams{
		ID:          id,
		CompanyID:   companyID,
		Title:       title,
		Description: "description",
		CategoryID:  category,
		PriorityID:  priority,
		Status:      status,
		CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, int(id), time.UTC),
	})
}
