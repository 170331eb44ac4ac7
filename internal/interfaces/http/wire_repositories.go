package http

import (
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo        user.Repository
	companyRepo     company.Repository
	companyUserRepo company.UserRepository
	ticketRepo      ticket.TicketRepository
	referenceRepo   ticket.ReferenceRepository
}

// newRepositories creates every repository on top of one gateway.
func newRepositories(gw gateway.Gateway) *repositories {
	return &repositories{
		userRepo:        repository.NewUserRepository(gw),
		companyRepo:     repository.NewCompanyRepository(gw),
		companyUserRepo: repository.NewCompanyUserRepository(gw),
		ticketRepo:      repository.NewTicketRepository(gw),
		referenceRepo:   repository.NewReferenceRepository(gw),
	}
}
