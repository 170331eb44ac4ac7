package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

var dashboardNow = time.Date(2025, 3, 17, 10, 30, 0, 0, time.UTC)

func newDashboard(users *mockUserRepository, companies *mockCompanyRepository, tickets *mockTicketRepository) *GetDashboardUseCase {
	uc := NewGetDashboardUseCase(users, companies, tickets, logger.NewNop())
	uc.now = func() time.Time { return dashboardNow }
	return uc
}

func metricFor(f ticket.TicketFilter) int64 {
	switch {
	case f.DueBefore != nil:
		return 2
	case f.CreatedSince != nil:
		return 4
	case len(f.Statuses) == 1 && f.Statuses[0] == vo.StatusOpen:
		return 3
	case len(f.Statuses) > 0:
		return 5
	default:
		return 12
	}
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("computes every metric scoped to the company", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return user.ReconstructUser(id, "ana", "ana@x.com", "h", user.RoleClientAdmin, dashboardNow), nil
			},
		}
		companies := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return company.ReconstructCompany(id, "Acme SA", company.Profile{CommercialName: strPtr("Acme")}, true, 1, dashboardNow), nil
			},
		}
		tickets := &mockTicketRepository{
			CountFunc: func(ctx context.Context, f ticket.TicketFilter) (int64, error) {
				if !isCompanyScoped(f, 7) {
					return 999, nil
				}
				return metricFor(f), nil
			},
		}

		got := newDashboard(users, companies, tickets).Execute(ctx, GetDashboardQuery{UserID: 1, CompanyID: 7})

		assert.Equal(t, "ana", got.AdminName)
		assert.Equal(t, "Acme", got.CompanyName)
		assert.Equal(t, int64(12), got.Metrics.TotalTickets)
		assert.Equal(t, int64(3), got.Metrics.OpenTickets)
		assert.Equal(t, int64(5), got.Metrics.ResolvedTickets)
		assert.Equal(t, int64(2), got.Metrics.OverdueTickets)
		assert.Equal(t, int64(4), got.Metrics.TicketsThisMonth)
	})

	t.Run("overdue and monthly filters", func(t *testing.T) {
		tickets := &mockTicketRepository{}
		newDashboard(&mockUserRepository{}, &mockCompanyRepository{}, tickets).Execute(ctx, GetDashboardQuery{CompanyID: 7})

		require.Len(t, tickets.filters, 5)
		for _, f := range tickets.filters {
			switch {
			case f.DueBefore != nil:
				assert.Equal(t, dashboardNow, *f.DueBefore)
				assert.ElementsMatch(t, vo.TerminalStatuses, f.ExcludeStatuses)
			case f.CreatedSince != nil:
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *f.CreatedSince)
			}
		}
	})

	t.Run("failures degrade to placeholders and zero", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return nil, errDB },
		}
		companies := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) { return nil, errDB },
		}
		tickets := &mockTicketRepository{
			CountFunc: func(ctx context.Context, f ticket.TicketFilter) (int64, error) {
				if f.DueBefore != nil {
					return 0, errDB
				}
				return 1, nil
			},
		}

		got := newDashboard(users, companies, tickets).Execute(ctx, GetDashboardQuery{UserID: 1, CompanyID: 7})

		assert.Equal(t, constants.DefaultAdminName, got.AdminName)
		assert.Equal(t, constants.DefaultCompanyName, got.CompanyName)
		assert.Equal(t, int64(0), got.Metrics.OverdueTickets)
		assert.Equal(t, int64(1), got.Metrics.TotalTickets)
	})

	t.Run("no company linked", func(t *testing.T) {
		tickets := &mockTicketRepository{}
		got := newDashboard(&mockUserRepository{}, &mockCompanyRepository{}, tickets).Execute(ctx, GetDashboardQuery{UserID: 1})

		assert.Equal(t, constants.DefaultCompanyName, got.CompanyName)
		assert.Zero(t, got.Metrics)
		assert.Empty(t, tickets.filters)
	})
}
