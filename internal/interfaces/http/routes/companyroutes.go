package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/permission"
	companyhandlers "github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/company"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler       *companyhandlers.CompanyHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCompanyRoutes configures company onboarding and the client admin
// home and collaborator screens. Sessions without a company are sent to the
// onboarding form once their role has been checked.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	perm := cfg.PermissionMiddleware
	requireCompany := cfg.AuthMiddleware.RequireCompany(companyhandlers.CreatePath)

	setup := perm.RequirePermission(permission.ResourceCompanySetup, permission.ActionManage)
	engine.GET(companyhandlers.CreatePath, setup, cfg.CompanyHandler.CreateForm)
	engine.POST(companyhandlers.CreatePath, setup, cfg.CompanyHandler.Create)

	engine.GET(companyhandlers.HomePath,
		perm.RequirePermission(permission.ResourceCompany, permission.ActionView),
		requireCompany,
		cfg.CompanyHandler.Home)

	manage := perm.RequirePermission(permission.ResourceCompany, permission.ActionManage)
	engine.GET(companyhandlers.UsersPath, manage, requireCompany, cfg.CompanyHandler.UsersForm)
	engine.POST(companyhandlers.UsersPath, manage, requireCompany, cfg.CompanyHandler.CreateUser)
}
