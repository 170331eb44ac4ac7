package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/permission"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// PermissionMiddleware gates routes on the role stored in the session.
type PermissionMiddleware struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission redirects anonymous callers to the login page and callers
// whose role lacks the permission to the landing page. No detail is shown.
func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := CurrentSession(c)
		if data == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(data.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", data.UserID, "resource", resource, "action", action)
			abortWithNotice(c, http.StatusInternalServerError, views.Notice{
				Icon:     views.IconError,
				Title:    "Error",
				Text:     "Could not verify your permissions. Please try again.",
				Redirect: LandingPath,
			})
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", data.UserID, "role", data.Role, "resource", resource, "action", action)
			c.Redirect(http.StatusFound, LandingPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
