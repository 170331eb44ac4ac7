package usecases

import (
	"context"
	"html/template"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
)

type mockTicketRepository struct {
	CreateFunc             func(ctx context.Context, t *ticket.Ticket) error
	FindByIDForCompanyFunc func(ctx context.Context, id, companyID uint) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountFunc              func(ctx context.Context, filter ticket.TicketFilter) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) FindByIDForCompany(ctx context.Context, id, companyID uint) (*ticket.Ticket, error) {
	if m.FindByIDForCompanyFunc != nil {
		return m.FindByIDForCompanyFunc(ctx, id, companyID)
	}
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

type mockReferenceRepository struct {
	ListCategoriesFunc  func(ctx context.Context) ([]ticket.Category, error)
	ListPrioritiesFunc  func(ctx context.Context) ([]ticket.Priority, error)
	CategoriesByIDsFunc func(ctx context.Context, ids []int) (map[int]ticket.Category, error)
	PrioritiesByIDsFunc func(ctx context.Context, ids []int) (map[int]ticket.Priority, error)
}

func (m *mockReferenceRepository) ListCategories(ctx context.Context) ([]ticket.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepository) ListPriorities(ctx context.Context) ([]ticket.Priority, error) {
	if m.ListPrioritiesFunc != nil {
		return m.ListPrioritiesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepository) CategoriesByIDs(ctx context.Context, ids []int) (map[int]ticket.Category, error) {
	if m.CategoriesByIDsFunc != nil {
		return m.CategoriesByIDsFunc(ctx, ids)
	}
	return map[int]ticket.Category{}, nil
}

func (m *mockReferenceRepository) PrioritiesByIDs(ctx context.Context, ids []int) (map[int]ticket.Priority, error) {
	if m.PrioritiesByIDsFunc != nil {
		return m.PrioritiesByIDsFunc(ctx, ids)
	}
	return map[int]ticket.Priority{}, nil
}

type mockCompanyRepository struct {
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
	return nil, nil
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockClassifier struct {
	ClassifyFunc func(ctx context.Context, title, description string) (*Classification, error)
}

func (m *mockClassifier) Classify(ctx context.Context, title, description string) (*Classification, error) {
	return m.ClassifyFunc(ctx, title, description)
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(text string) (template.HTML, error) {
	if m.err != nil {
		return "", m.err
	}
	return template.HTML("<p>" + text + "</p>"), nil
}

type recorded struct {
	created  []string
	outcomes []string
}

func (r *recorded) TicketCreated(mode string)     { r.created = append(r.created, mode) }
func (r *recorded) ClassifierCall(outcome string) { r.outcomes = append(r.outcomes, outcome) }

func intPtr(i int) *int { return &i }

func makeTicket(id, companyID uint, category, priority *int) *ticket.Ticket {
	return ticket.ReconstructTicket(ticket.ReconstructParams{
		ID:          id,
		CompanyID:   companyID,
		Title:       "Ticket",
		Description: "Something **broke**",
		CategoryID:  category,
		PriorityID:  priority,
		Status:      vo.StatusOpen,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
}
