package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/config"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/database"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/metrics"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// Container holds the infrastructure, repositories, use cases and handlers
// of the web application and releases them in Shutdown.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	cfg     *config.Config
	log     logger.Interface
	db      *gorm.DB // nil when the REST gateway is in use
	gateway gateway.Gateway
	redis   *redis.Client // nil when Redis is not configured
	metrics *metrics.Metrics

	sessions *session.Manager

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter
}

// NewContainer connects to the configured stores and wires every component.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}
	if err := c.initMiddlewares(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

// Gateway exposes the data access gateway for commands that run outside the
// HTTP server, such as seeding.
func (c *Container) Gateway() gateway.Gateway {
	return c.gateway
}

// DB returns the gorm handle, or nil when the REST gateway is in use.
func (c *Container) DB() *gorm.DB {
	return c.db
}

func (c *Container) Config() *config.Config {
	return c.cfg
}

// Shutdown closes the Redis client and the database pool.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	if c.db != nil {
		if err := database.Close(c.db); err != nil {
			c.log.Warnw("failed to close database", "error", err)
		}
	}
}
