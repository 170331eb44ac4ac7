package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketusecases "github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

func TestGetDashboard(t *testing.T) {
	tickets := &mockTicketRepository{
		CountFunc: func(ctx context.Context, filter ticket.TicketFilter) (int64, error) { return 42, nil },
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 5, filter.PageSize)
			assert.Nil(t, filter.CompanyID)
			return []*ticket.Ticket{
				makeTicket(3, 1, "VPN down", intPtr(3), intPtr(3), vo.StatusOpen),
				makeTicket(2, 1, "Mouse", intPtr(1), intPtr(7), vo.StatusClosed),
				makeTicket(1, 2, "Odd", intPtr(99), nil, vo.StatusInProgress),
			}, 42, nil
		},
	}
	users := &mockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 12, nil },
		CountByRoleFunc: func(ctx context.Context, role user.Role) (int64, error) {
			assert.Equal(t, user.RoleTechAdmin, role)
			return 4, nil
		},
	}
	companies := &mockCompanyRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	ref := &mockReferenceRepository{
		categories: map[int]ticket.Category{1: {ID: 1, Name: "Hardware"}, 3: {ID: 3, Name: "Network"}},
	}
	loader := ticketusecases.NewLookupLoader(ref, companies, logger.NewNop())

	got := NewGetDashboardUseCase(tickets, users, companies, loader, logger.NewNop()).Execute(context.Background())

	assert.Equal(t, int64(42), got.TotalTickets)
	assert.Equal(t, int64(12), got.TotalUsers)
	assert.Equal(t, int64(4), got.TotalCollaborators)
	assert.Equal(t, int64(3), got.TotalCompanies)
	assert.Equal(t, 1, ref.calls, "categories are fetched in one batch")

	require.Len(t, got.RecentTickets, 3)
	first := got.RecentTickets[0]
	assert.Equal(t, "Network", first.CategoryName)
	assert.Equal(t, "primary", first.StatusColor)
	assert.Equal(t, "High", first.PriorityName)
	assert.Equal(t, "danger", first.PriorityColor)

	second := got.RecentTickets[1]
	assert.Equal(t, "success", second.StatusColor)
	assert.Equal(t, "N/A", second.PriorityName)

	third := got.RecentTickets[2]
	assert.Equal(t, "uncategorized", third.CategoryName)
	assert.Equal(t, "secondary", third.StatusColor)
}

func TestGetDashboard_DegradesFailedQueries(t *testing.T) {
	boom := errors.New("down")
	tickets := &mockTicketRepository{
		CountFunc: func(ctx context.Context, filter ticket.TicketFilter) (int64, error) { return 0, boom },
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			return nil, 0, boom
		},
	}
	users := &mockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 9, nil },
		CountByRoleFunc: func(ctx context.Context, role user.Role) (int64, error) {
			return 0, boom
		},
	}
	companies := &mockCompanyRepository{}
	loader := ticketusecases.NewLookupLoader(&mockReferenceRepository{}, companies, logger.NewNop())

	got := NewGetDashboardUseCase(tickets, users, companies, loader, logger.NewNop()).Execute(context.Background())

	assert.Zero(t, got.TotalTickets)
	assert.Equal(t, int64(9), got.TotalUsers)
	assert.Zero(t, got.TotalCollaborators)
	assert.Empty(t, got.RecentTickets)
}

func TestGetDashboard_CategoryLookupFailure(t *testing.T) {
	tickets := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			return []*ticket.Ticket{makeTicket(1, 1, "t", intPtr(2), intPtr(1), vo.StatusPending)}, 1, nil
		},
	}
	ref := &mockReferenceRepository{err: errors.New("down")}
	companies := &mockCompanyRepository{}
	loader := ticketusecases.NewLookupLoader(ref, companies, logger.NewNop())

	got := NewGetDashboardUseCase(tickets, &mockUserRepository{}, companies, loader, logger.NewNop()).Execute(context.Background())

	require.Len(t, got.RecentTickets, 1)
	assert.Equal(t, "uncategorized", got.RecentTickets[0].CategoryName)
	assert.Equal(t, "warning", got.RecentTickets[0].StatusColor)
	assert.Equal(t, "Low", got.RecentTickets[0].PriorityName)
}
