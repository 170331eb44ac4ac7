package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/application/admin/dto"
	ticketdto "github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
)

type GetDashboardExecutor interface {
	Execute(ctx context.Context) *dto.DashboardDTO
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ticketdto.TicketPageDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) []dto.UserDTO
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context) ([]dto.CompanyDTO, error)
}
