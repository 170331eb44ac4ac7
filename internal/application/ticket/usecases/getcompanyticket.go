package usecases

import (
	"context"
	"html"
	"html/template"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

type GetCompanyTicketQuery struct {
	TicketID  uint
	CompanyID uint
}

type GetCompanyTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	lookups    *LookupLoader
	renderer   DescriptionRenderer
	logger     logger.Interface
	now        func() time.Time
}

func NewGetCompanyTicketUseCase(
	ticketRepo ticket.TicketRepository,
	lookups *LookupLoader,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *GetCompanyTicketUseCase {
	return &GetCompanyTicketUseCase{
		ticketRepo: ticketRepo,
		lookups:    lookups,
		renderer:   renderer,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

// Execute returns NotFound for tickets of other tenants so their existence
// is not revealed.
func (uc *GetCompanyTicketUseCase) Execute(ctx context.Context, query GetCompanyTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewForbiddenError("No company is linked to this session")
	}
	if query.TicketID == 0 {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	t, err := uc.ticketRepo.FindByIDForCompany(ctx, query.TicketID, query.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewUpstreamError("Could not load the ticket").WithCause(err)
	}
	if t == nil || !t.BelongsTo(query.CompanyID) {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	lk := uc.lookups.Load(ctx, []*ticket.Ticket{t}, LookupSet{Categories: true, Priorities: true})
	detail := &dto.TicketDetailDTO{
		TicketRowDTO: dto.ToRow(t, lk, uc.now()),
		AssigneeID:   t.AssigneeID(),
	}

	rendered, err := uc.renderer.Render(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render ticket description", "error", err, "ticket_id", t.ID())
		detail.DescriptionHTML = template.HTML(html.EscapeString(t.Description()))
	} else {
		detail.DescriptionHTML = rendered
	}
	return detail, nil
}
