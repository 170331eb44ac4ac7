package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

var redactedHeaders = []string{"Cookie", "Authorization", constants.CSRFHeaderName}

// Recovery turns a panic into the generic error notice. A client that hung up
// mid-response only gets a warning, since nothing can be written back.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		fields := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"panic", recovered,
		}
		if err, ok := recovered.(error); ok && clientGone(err) {
			log.Warnw("client disconnected during response", fields...)
			c.Abort()
			return
		}

		if s := CurrentSession(c); s != nil {
			fields = append(fields, "user_id", s.UserID)
		}
		fields = append(fields,
			"headers", redactHeaders(c.Request.Header),
			"stack", string(debug.Stack()),
		)
		log.Errorw("panic recovered", fields...)

		abortWithNotice(c, http.StatusInternalServerError, views.Notice{
			Icon:     views.IconError,
			Title:    "Error",
			Text:     constants.ErrMsgTryAgain,
			Redirect: LandingPath,
		})
	})
}

func clientGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range redactedHeaders {
		if out.Get(name) != "" {
			out.Set(name, "[redacted]")
		}
	}
	return out
}
