package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/permission"
	companyhandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/company"
	tickethandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	perm := cfg.PermissionMiddleware
	requireCompany := cfg.AuthMiddleware.RequireCompany(companyhandlers.CreatePath)
	create := perm.RequirePermission(permission.ResourceTicketCreate, permission.ActionManage)
	view := perm.RequirePermission(permission.ResourceCompany, permission.ActionView)

	tickets := engine.Group(tickethandlers.ListPath)
	{
		// Static paths are registered before /:id.
		tickets.GET("/new", create, cfg.TicketHandler.ChooseMode)
		tickets.GET("/manual", create, requireCompany, cfg.TicketHandler.ManualForm)
		tickets.POST("/manual", create, requireCompany, cfg.TicketHandler.CreateManual)
		tickets.GET("/ia", create, requireCompany, cfg.TicketHandler.AIForm)
		tickets.POST("/ia", create, requireCompany, cfg.TicketHandler.CreateAI)

		tickets.GET("", view, requireCompany, cfg.TicketHandler.List)
		tickets.GET("/:id", view, requireCompany, cfg.TicketHandler.Show)
	}
}
