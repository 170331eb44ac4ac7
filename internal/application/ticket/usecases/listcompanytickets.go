package usecases

import (
	"context"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

type ListCompanyTicketsQuery struct {
	CompanyID uint
	Page      int
}

// ListCompanyTicketsUseCase pages through one tenant's tickets.
type ListCompanyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	lookups    *LookupLoader
	logger     logger.Interface
	now        func() time.Time
}

func NewListCompanyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	lookups *LookupLoader,
	logger logger.Interface,
) *ListCompanyTicketsUseCase {
	return &ListCompanyTicketsUseCase{
		ticketRepo: ticketRepo,
		lookups:    lookups,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *ListCompanyTicketsUseCase) Execute(ctx context.Context, query ListCompanyTicketsQuery) (*dto.TicketPageDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewForbiddenError("No company is linked to this session")
	}

	p := utils.NewPagination(query.Page)
	companyID := query.CompanyID
	tickets, total, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		CompanyID: &companyID,
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list company tickets", "error", err, "company_id", companyID)
		return nil, errors.NewUpstreamError("Could not load tickets").WithCause(err)
	}

	lk := uc.lookups.Load(ctx, tickets, LookupSet{Categories: true, Priorities: true})
	return &dto.TicketPageDTO{
		Tickets:    dto.ToRows(tickets, lk, uc.now()),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: utils.TotalPagesAtLeastOne(total, p.PageSize),
	}, nil
}
