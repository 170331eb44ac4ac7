package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/permission"
	adminhandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/admin"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the administrator screens.
type AdminRouteConfig struct {
	AdminHandler         *adminhandlers.AdminHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures /admin. The technical dashboard has its own
// rule so technical admins can reach it without the rest of the section.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	perm := cfg.PermissionMiddleware

	engine.GET("/admin/tech-dashboard",
		perm.RequirePermission(permission.ResourceTechDashboard, permission.ActionView),
		cfg.AdminHandler.TechDashboard)

	view := perm.RequirePermission(permission.ResourceAdmin, permission.ActionView)
	engine.GET("/admin", view, cfg.AdminHandler.Home)
	engine.GET("/admin/tickets", view, cfg.AdminHandler.Tickets)
	engine.GET("/admin/users", view, cfg.AdminHandler.Users)
	engine.GET("/admin/companies", view, cfg.AdminHandler.Companies)
}
