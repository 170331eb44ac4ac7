package repository

import (
	"context"
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/mappers"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/mapper"
)

// ReferenceRepository reads the category and priority lookup tables.
type ReferenceRepository struct {
	gw     gateway.Gateway
	mapper mappers.TicketMapper
}

func NewReferenceRepository(gw gateway.Gateway) *ReferenceRepository {
	return &ReferenceRepository{gw: gw, mapper: mappers.NewTicketMapper()}
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]ticket.Category, error) {
	return r.categories(ctx, gateway.From(constants.TableCategories).OrderBy("sort_order", false).OrderBy("id", false))
}

func (r *ReferenceRepository) ListPriorities(ctx context.Context) ([]ticket.Priority, error) {
	return r.priorities(ctx, gateway.From(constants.TablePriorities).OrderBy("sort_order", false).OrderBy("id", false))
}

// CategoriesByIDs fetches all requested categories in one round trip.
func (r *ReferenceRepository) CategoriesByIDs(ctx context.Context, ids []int) (map[int]ticket.Category, error) {
	out := make(map[int]ticket.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := r.categories(ctx, gateway.From(constants.TableCategories).In("id", gateway.ValuesOf(ids)...))
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}

func (r *ReferenceRepository) PrioritiesByIDs(ctx context.Context, ids []int) (map[int]ticket.Priority, error) {
	out := make(map[int]ticket.Priority, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := r.priorities(ctx, gateway.From(constants.TablePriorities).In("id", gateway.ValuesOf(ids)...))
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ReferenceRepository) categories(ctx context.Context, q *gateway.Query) ([]ticket.Category, error) {
	var rows []models.CategoryModel
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return mapper.MapRows(rows, r.mapper.CategoryToDomain), nil
}

func (r *ReferenceRepository) priorities(ctx context.Context, q *gateway.Query) ([]ticket.Priority, error) {
	var rows []models.PriorityModel
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to load priorities: %w", err)
	}
	return mapper.MapRows(rows, r.mapper.PriorityToDomain), nil
}
