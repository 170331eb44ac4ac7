package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/EDUARX24/Tickets-AI/internal/application/admin/dto"
	ticketdto "github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	ticketusecases "github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// GetDashboardUseCase builds the system admin home screen. Each figure is
// loaded independently and a failed query shows as zero.
type GetDashboardUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	companyRepo company.Repository
	lookups     *ticketusecases.LookupLoader
	logger      logger.Interface
	now         func() time.Time
}

func NewGetDashboardUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	companyRepo company.Repository,
	lookups *ticketusecases.LookupLoader,
	log logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		lookups:     lookups,
		logger:      log,
		now:         biztime.NowUTC,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) *dto.DashboardDTO {
	uc.logger.Debugw("fetching admin dashboard")

	out := &dto.DashboardDTO{}
	var recent []*ticket.Ticket

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.TotalTickets = uc.degrade("total_tickets", func() (int64, error) {
			return uc.ticketRepo.Count(gctx, ticket.TicketFilter{})
		})
		return nil
	})

	g.Go(func() error {
		out.TotalUsers = uc.degrade("total_users", func() (int64, error) {
			return uc.userRepo.Count(gctx)
		})
		return nil
	})

	g.Go(func() error {
		out.TotalCollaborators = uc.degrade("total_collaborators", func() (int64, error) {
			return uc.userRepo.CountByRole(gctx, user.RoleTechAdmin)
		})
		return nil
	})

	g.Go(func() error {
		out.TotalCompanies = uc.degrade("total_companies", func() (int64, error) {
			return uc.companyRepo.Count(gctx)
		})
		return nil
	})

	g.Go(func() error {
		tickets, _, err := uc.ticketRepo.List(gctx, ticket.TicketFilter{Page: 1, PageSize: constants.RecentTicketsLimit})
		if err != nil {
			uc.logger.Warnw("failed to load recent tickets", "error", err)
			return nil
		}
		recent = tickets
		return nil
	})

	_ = g.Wait()

	lk := uc.lookups.Load(ctx, recent, ticketusecases.LookupSet{Categories: true})
	out.RecentTickets = ticketdto.ToRows(recent, lk, uc.now())
	return out
}

func (uc *GetDashboardUseCase) degrade(metric string, load func() (int64, error)) int64 {
	n, err := load()
	if err != nil {
		uc.logger.Warnw("dashboard metric unavailable", "metric", metric, "error", err)
		return 0
	}
	return n
}
