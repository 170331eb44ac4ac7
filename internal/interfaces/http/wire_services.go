package http

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/auth"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/cache"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/config"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/database"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/metrics"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/permission"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/ratelimit"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	sharedConfig "github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

const loginRateScope = "login"

// initInfrastructure opens the data gateway, Redis and the session manager.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	gw, db, err := OpenGateway(cfg, log)
	if err != nil {
		return err
	}
	c.gateway = gw
	c.db = db

	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redis = client
		log.Infow("redis connection established", "addr", client.Options().Addr)
	}

	c.metrics = metrics.New()
	c.repos = newRepositories(c.gateway)

	store, err := c.newSessionStore()
	if err != nil {
		return err
	}
	c.sessions = session.NewManager(store, auth.NewJWTService(cfg.Session.Secret), cfg.Session, log.Named("session"))
	return nil
}

// OpenGateway builds the gateway selected by the database driver. The gorm
// handle is returned for SQL drivers so callers can run migrations and close
// the pool; it is nil for the REST gateway.
func OpenGateway(cfg *config.Config, log logger.Interface) (gateway.Gateway, *gorm.DB, error) {
	if cfg.Database.Driver == sharedConfig.DriverREST {
		timeout := time.Duration(cfg.Database.RESTTimeout) * time.Second
		log.Infow("using REST data gateway", "url", cfg.Database.RESTURL)
		return gateway.NewRESTGateway(cfg.Database.RESTURL, cfg.Database.RESTKey, timeout), nil, nil
	}

	db, err := database.Open(&cfg.Database, log.Named("database"))
	if err != nil {
		return nil, nil, err
	}
	log.Infow("using SQL data gateway", "driver", cfg.Database.Driver)
	return gateway.NewSQLGateway(db), db, nil
}

func (c *Container) newSessionStore() (session.Store, error) {
	switch c.cfg.Session.Store {
	case "redis":
		if c.redis == nil {
			return nil, fmt.Errorf("session store redis requires a redis connection")
		}
		return session.NewRedisStore(c.redis), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

func (c *Container) initMiddlewares() error {
	cfg := c.cfg
	log := c.log

	enforcer, err := permission.NewEnforcer(log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to build permission enforcer: %w", err)
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.sessions, log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log.Named("permission"))

	// Login throttling is only enabled with Redis.
	if c.redis != nil {
		window := time.Duration(cfg.Auth.LoginRateWindowSeconds) * time.Second
		c.loginLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			loginRateScope,
			cfg.Auth.LoginRateLimit,
			window,
			log.Named("ratelimit"),
		)
	} else {
		log.Infow("login rate limiting disabled, redis is not configured")
	}
	return nil
}
