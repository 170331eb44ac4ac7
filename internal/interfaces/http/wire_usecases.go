package http

import (
	adminUsecases "github.com/EDUARX24/Tickets-AI/internal/application/admin/usecases"
	authUsecases "github.com/EDUARX24/Tickets-AI/internal/application/auth/usecases"
	companyUsecases "github.com/EDUARX24/Tickets-AI/internal/application/company/usecases"
	ticketUsecases "github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/auth"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/classifier"
	"github.com/EDUARX24/Tickets-AI/internal/shared/services/markdown"
)

type allUseCases struct {
	// auth
	register *authUsecases.RegisterUseCase
	login    *authUsecases.LoginUseCase

	// admin
	adminDashboard *adminUsecases.GetDashboardUseCase
	adminTickets   *adminUsecases.ListTicketsUseCase
	adminUsers     *adminUsecases.ListUsersUseCase
	adminCompanies *adminUsecases.ListCompaniesUseCase

	// company
	createCompany     *companyUsecases.CreateCompanyUseCase
	companyDashboard  *companyUsecases.GetDashboardUseCase
	createCompanyUser *companyUsecases.CreateCompanyUserUseCase

	// ticket
	listTickets   *ticketUsecases.ListCompanyTicketsUseCase
	getTicket     *ticketUsecases.GetCompanyTicketUseCase
	createTicket  *ticketUsecases.CreateTicketUseCase
	createAI      *ticketUsecases.CreateTicketAIUseCase
	referenceData *ticketUsecases.GetReferenceDataUseCase
}

func (c *Container) initUseCases() {
	cfg := c.cfg
	log := c.log
	r := c.repos

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	lookups := ticketUsecases.NewLookupLoader(r.referenceRepo, r.companyRepo, log.Named("lookups"))
	classifierClient := classifier.NewClient(cfg.Classifier, log.Named("classifier"))

	c.ucs = &allUseCases{
		register: authUsecases.NewRegisterUseCase(r.userRepo, hasher, log),
		login:    authUsecases.NewLoginUseCase(r.userRepo, r.companyRepo, r.companyUserRepo, hasher, log),

		adminDashboard: adminUsecases.NewGetDashboardUseCase(r.ticketRepo, r.userRepo, r.companyRepo, lookups, log),
		adminTickets:   adminUsecases.NewListTicketsUseCase(r.ticketRepo, lookups, log),
		adminUsers:     adminUsecases.NewListUsersUseCase(r.userRepo, log),
		adminCompanies: adminUsecases.NewListCompaniesUseCase(r.companyRepo, log),

		createCompany:     companyUsecases.NewCreateCompanyUseCase(r.companyRepo, log),
		companyDashboard:  companyUsecases.NewGetDashboardUseCase(r.userRepo, r.companyRepo, r.ticketRepo, log),
		createCompanyUser: companyUsecases.NewCreateCompanyUserUseCase(r.companyUserRepo, hasher, log),

		listTickets:   ticketUsecases.NewListCompanyTicketsUseCase(r.ticketRepo, lookups, log),
		getTicket:     ticketUsecases.NewGetCompanyTicketUseCase(r.ticketRepo, lookups, markdown.NewRenderer(), log),
		createTicket:  ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, c.metrics, log),
		createAI:      ticketUsecases.NewCreateTicketAIUseCase(r.ticketRepo, classifierClient, c.metrics, log),
		referenceData: ticketUsecases.NewGetReferenceDataUseCase(r.referenceRepo, log),
	}
}
