package http

import (
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers"
	adminHandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/admin"
	companyHandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/company"
	ticketHandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/ticket"
)

type allHandlers struct {
	mainHandler    *handlers.MainHandler
	authHandler    *handlers.AuthHandler
	adminHandler   *adminHandlers.AdminHandler
	companyHandler *companyHandlers.CompanyHandler
	ticketHandler  *ticketHandlers.TicketHandler
}

func (c *Container) initHandlers() {
	log := c.log
	u := c.ucs

	c.hdlrs = &allHandlers{
		mainHandler: handlers.NewMainHandler(c.gateway, log),
		authHandler: handlers.NewAuthHandler(u.register, u.login, c.sessions, c.metrics, log.Named("auth")),
		adminHandler: adminHandlers.NewAdminHandler(
			u.adminDashboard,
			u.adminTickets,
			u.adminUsers,
			u.adminCompanies,
			log.Named("admin"),
		),
		companyHandler: companyHandlers.NewCompanyHandler(
			u.createCompany,
			u.companyDashboard,
			u.createCompanyUser,
			c.sessions,
			log.Named("company"),
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.listTickets,
			u.getTicket,
			u.createTicket,
			u.createAI,
			u.referenceData,
			log.Named("ticket"),
		),
	}
}
