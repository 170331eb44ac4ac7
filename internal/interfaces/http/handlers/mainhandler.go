package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/common"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

const healthTimeout = 3 * time.Second

type MainHandler struct {
	store  Pinger
	logger logger.Interface
}

func NewMainHandler(store Pinger, logger logger.Interface) *MainHandler {
	return &MainHandler{store: store, logger: logger}
}

// Index handles GET /
func (h *MainHandler) Index(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageIndex, "Home", "dashboard", nil)
}

// HealthCheck handles GET /healthz
func (h *MainHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
