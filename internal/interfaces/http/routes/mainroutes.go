package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers"
)

type MainRouteConfig struct {
	MainHandler *handlers.MainHandler
	// MetricsHandler is nil when metrics are disabled.
	MetricsHandler http.Handler
	MetricsPath    string
}

func SetupMainRoutes(engine *gin.Engine, cfg *MainRouteConfig) {
	engine.GET("/", cfg.MainHandler.Index)
	engine.GET("/healthz", cfg.MainHandler.HealthCheck)

	if cfg.MetricsHandler != nil {
		engine.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}
}
