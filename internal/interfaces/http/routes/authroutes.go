package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// RateLimiter may be nil when no shared store is configured.
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures registration, login and logout.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET("/register", cfg.AuthHandler.RegisterForm)
	engine.POST("/register", cfg.AuthHandler.Register)

	engine.GET("/login", cfg.AuthHandler.LoginForm)
	engine.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)

	engine.GET("/logout", cfg.AuthHandler.Logout)
}
