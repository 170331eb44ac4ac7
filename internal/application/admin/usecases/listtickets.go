package usecases

import (
	"context"
	"strings"
	"time"

	ticketdto "github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	ticketusecases "github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

type ListTicketsQuery struct {
	Page   int
	Search string
}

// ListTicketsUseCase pages through every tenant's tickets with optional
// search over title and description.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	lookups    *ticketusecases.LookupLoader
	logger     logger.Interface
	now        func() time.Time
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, lookups *ticketusecases.LookupLoader, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		lookups:    lookups,
		logger:     log,
		now:        biztime.NowUTC,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ticketdto.TicketPageDTO, error) {
	p := utils.NewPagination(query.Page)
	search := strings.TrimSpace(query.Search)

	tickets, total, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		Search:   search,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "page", p.Page, "search", search)
		return nil, errors.NewUpstreamError("Could not load tickets").WithCause(err)
	}

	lk := uc.lookups.Load(ctx, tickets, ticketusecases.LookupSet{Categories: true, Priorities: true, Companies: true})
	return &ticketdto.TicketPageDTO{
		Tickets:    ticketdto.ToRows(tickets, lk, uc.now()),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: utils.TotalPages(total, p.PageSize),
		Search:     search,
	}, nil
}
