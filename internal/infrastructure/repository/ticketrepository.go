package repository

import (
	"context"
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/mappers"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

type TicketRepository struct {
	gw     gateway.Gateway
	mapper mappers.TicketMapper
}

func NewTicketRepository(gw gateway.Gateway) *TicketRepository {
	return &TicketRepository{
		gw:     gw,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.gw.Insert(ctx, constants.TableTickets, model); err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// FindByIDForCompany filters on both keys so a ticket owned by another
// tenant is indistinguishable from a missing one.
func (r *TicketRepository) FindByIDForCompany(ctx context.Context, id, companyID uint) (*ticket.Ticket, error) {
	var rows []models.TicketModel
	q := gateway.From(constants.TableTickets).Eq("id", id).Eq("company_id", companyID).Single()
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&rows[0]), nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	q := r.filtered(filter).OrderBy("created_at", true).OrderBy("id", true).WithCount()
	if filter.PageSize > 0 {
		p := utils.Pagination{Page: max(filter.Page, constants.DefaultPage), PageSize: filter.PageSize}
		q.Range(p.Offset(), p.PageSize)
	}

	var rows []models.TicketModel
	total, err := r.gw.Select(ctx, q, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToDomainList(rows), total, nil
}

func (r *TicketRepository) Count(ctx context.Context, filter ticket.TicketFilter) (int64, error) {
	return count(ctx, r.gw, r.filtered(filter))
}

func (r *TicketRepository) filtered(filter ticket.TicketFilter) *gateway.Query {
	q := gateway.From(constants.TableTickets)
	if filter.CompanyID != nil {
		q.Eq("company_id", *filter.CompanyID)
	}
	if len(filter.Statuses) > 0 {
		q.In("status", gateway.ValuesOf(filter.Statuses)...)
	}
	q.NotIn("status", gateway.ValuesOf(filter.ExcludeStatuses)...)
	if filter.Search != "" {
		q.Or(
			gateway.F("title", gateway.OpContains, filter.Search),
			gateway.F("description", gateway.OpContains, filter.Search),
		)
	}
	if filter.DueBefore != nil {
		q.Lt("response_due_at", *filter.DueBefore)
	}
	if filter.CreatedSince != nil {
		q.Gte("created_at", *filter.CreatedSince)
	}
	return q
}
