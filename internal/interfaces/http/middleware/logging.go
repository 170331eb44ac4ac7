package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// quietPaths are polled by health checks and scrapers and only logged on failure.
var quietPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// Logger writes one access line per request. The route template is logged
// instead of the raw path so ticket ids do not fan out log cardinality.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if quietPaths[c.Request.URL.Path] && status < 500 {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if s := CurrentSession(c); s != nil {
			fields = append(fields, "user_id", s.UserID, "role", s.Role.String())
			if s.HasCompany() {
				fields = append(fields, "company_id", s.Company())
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request served", fields...)
		}
	}
}
