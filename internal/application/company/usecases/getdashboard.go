package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/EDUARX24/Tickets-AI/internal/application/company/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserID    uint
	CompanyID uint
}

// GetDashboardUseCase computes the tenant metrics. Every lookup degrades on
// failure: names fall back to placeholders and counts to zero.
type GetDashboardUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewGetDashboardUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	ticketRepo ticket.TicketRepository,
	log logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		ticketRepo:  ticketRepo,
		logger:      log,
		now:         biztime.NowUTC,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) *dto.DashboardDTO {
	out := &dto.DashboardDTO{
		AdminName:   constants.DefaultAdminName,
		CompanyName: constants.DefaultCompanyName,
	}

	now := uc.now()
	monthStart := biztime.StartOfMonthUTC(now)
	companyID := query.CompanyID
	scoped := func(f ticket.TicketFilter) ticket.TicketFilter {
		f.CompanyID = &companyID
		return f
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if query.UserID == 0 {
			return nil
		}
		u, err := uc.userRepo.FindByID(gctx, query.UserID)
		if err != nil {
			uc.logger.Warnw("failed to load admin name", "error", err, "user_id", query.UserID)
			return nil
		}
		if u != nil && u.DisplayName() != "" {
			out.AdminName = u.DisplayName()
		}
		return nil
	})

	g.Go(func() error {
		if companyID == 0 {
			return nil
		}
		c, err := uc.companyRepo.FindByID(gctx, companyID)
		if err != nil {
			uc.logger.Warnw("failed to load company name", "error", err, "company_id", companyID)
			return nil
		}
		if c != nil && c.DisplayName() != "" {
			out.CompanyName = c.DisplayName()
		}
		return nil
	})

	if companyID != 0 {
		metrics := []struct {
			name   string
			filter ticket.TicketFilter
			dst    *int64
		}{
			{"total", ticket.TicketFilter{}, &out.Metrics.TotalTickets},
			{"open", ticket.TicketFilter{Statuses: []vo.TicketStatus{vo.StatusOpen}}, &out.Metrics.OpenTickets},
			{"resolved", ticket.TicketFilter{Statuses: vo.DoneStatuses}, &out.Metrics.ResolvedTickets},
			{"overdue", ticket.TicketFilter{ExcludeStatuses: vo.TerminalStatuses, DueBefore: &now}, &out.Metrics.OverdueTickets},
			{"this_month", ticket.TicketFilter{CreatedSince: &monthStart}, &out.Metrics.TicketsThisMonth},
		}
		for _, m := range metrics {
			m := m
			g.Go(func() error {
				n, err := uc.ticketRepo.Count(gctx, scoped(m.filter))
				if err != nil {
					uc.logger.Warnw("dashboard metric unavailable", "metric", m.name, "error", err, "company_id", companyID)
					return nil
				}
				*m.dst = n
				return nil
			})
		}
	}

	_ = g.Wait()
	return out
}
