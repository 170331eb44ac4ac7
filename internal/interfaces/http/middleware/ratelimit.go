package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// Limiter counts attempts per key inside a sliding window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimiter throttles a route per client IP. When the backing store is
// unreachable requests are let through.
type RateLimiter struct {
	limiter Limiter
	scope   string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter Limiter, scope string, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		limit:   limit,
		window:  window,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := rl.scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit, rl.window)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			authErr := errors.NewTooManyAttemptsError()
			rl.logger.Warnw("rate limit exceeded", "scope", rl.scope, "client_ip", c.ClientIP())
			abortWithNotice(c, http.StatusTooManyRequests, views.Notice{
				Icon:     views.IconWarning,
				Title:    "Too many attempts",
				Text:     authErr.Message,
				Redirect: c.Request.URL.Path,
			})
			return
		}

		c.Next()
	}
}
