package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/routes"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) (*Router, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	container.engine.HTMLRender = renderer
	utils.RegisterFormTagNames()

	return &Router{engine: container.engine, container: container}, nil
}

// SetupRoutes installs the global middleware chain and every route group.
func (r *Router) SetupRoutes() {
	c := r.container
	log := c.log.Named("http")

	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Metrics(c.metrics))
	r.engine.Use(c.authMiddleware.LoadSession())
	r.engine.Use(middleware.CSRF(c.cfg.Session.Cookie))

	mainCfg := &routes.MainRouteConfig{
		MainHandler: c.hdlrs.mainHandler,
	}
	if c.cfg.Metrics.Enabled {
		mainCfg.MetricsHandler = c.metrics.Handler()
		mainCfg.MetricsPath = c.cfg.Metrics.Path
	}
	routes.SetupMainRoutes(r.engine, mainCfg)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.loginLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:         c.hdlrs.adminHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler:       c.hdlrs.companyHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases the container's connections.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
