package mappers

import (
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) *ticket.Ticket
	ToDomainList(rows []models.TicketModel) []*ticket.Ticket
	CategoryToDomain(model *models.CategoryModel) ticket.Category
	PriorityToDomain(model *models.PriorityModel) ticket.Priority
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:            t.ID(),
		CompanyID:     t.CompanyID(),
		AssigneeID:    t.AssigneeID(),
		Title:         t.Title(),
		Description:   t.Description(),
		CategoryID:    t.CategoryID(),
		PriorityID:    t.PriorityID(),
		Status:        t.Status().String(),
		CreatedAt:     t.CreatedAt(),
		ResponseDueAt: t.ResponseDueAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	if model == nil {
		return nil
	}
	return ticket.ReconstructTicket(ticket.ReconstructParams{
		ID:            model.ID,
		CompanyID:     model.CompanyID,
		AssigneeID:    model.AssigneeID,
		Title:         model.Title,
		Description:   model.Description,
		CategoryID:    model.CategoryID,
		PriorityID:    model.PriorityID,
		Status:        vo.TicketStatus(model.Status),
		CreatedAt:     model.CreatedAt,
		ResponseDueAt: model.ResponseDueAt,
	})
}

func (m *TicketMapperImpl) ToDomainList(rows []models.TicketModel) []*ticket.Ticket {
	return mapper.MapRows(rows, m.ToDomain)
}

func (m *TicketMapperImpl) CategoryToDomain(model *models.CategoryModel) ticket.Category {
	return ticket.Category{ID: model.ID, Name: model.Name, SortOrder: model.SortOrder}
}

func (m *TicketMapperImpl) PriorityToDomain(model *models.PriorityModel) ticket.Priority {
	return ticket.Priority{ID: model.ID, Code: model.Code, Name: model.Name, SortOrder: model.SortOrder}
}
