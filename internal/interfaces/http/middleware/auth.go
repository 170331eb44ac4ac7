package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

const (
	LoginPath   = "/login"
	LandingPath = "/"
)

type AuthMiddleware struct {
	sessions *session.Manager
	logger   logger.Interface
}

func NewAuthMiddleware(sessions *session.Manager, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// LoadSession attaches the caller's session to the context when the cookie
// names a live one. Anonymous requests pass through untouched.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, data, err := m.sessions.Load(c)
		if err != nil {
			m.logger.Warnw("failed to load session", "error", err, "path", c.Request.URL.Path)
		}
		if data != nil {
			c.Set(constants.ContextKeySession, data)
			c.Set(constants.ContextKeySessionID, sid)
			c.Set(constants.ContextKeyUserID, data.UserID)
			c.Set(constants.ContextKeyUserRole, data.Role.String())
		}
		c.Next()
	}
}

// RequireCompany lets through sessions linked to a company. Anonymous callers
// go to the login page. A client admin without a company is sent to
// onboardPath; other roles cannot register one and get a notice instead.
func (m *AuthMiddleware) RequireCompany(onboardPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := CurrentSession(c)
		switch {
		case data == nil:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case data.HasCompany():
			c.Next()
		case data.Role == user.RoleClientAdmin:
			m.logger.Debugw("client admin has no company yet", "user_id", data.UserID, "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, onboardPath)
			c.Abort()
		default:
			m.logger.Warnw("session has no linked company", "user_id", data.UserID, "role", data.Role.String(), "path", c.Request.URL.Path)
			abortWithNotice(c, http.StatusForbidden, views.Notice{
				Icon:     views.IconWarning,
				Title:    "No company",
				Text:     constants.ErrMsgNoCompany,
				Redirect: LandingPath,
			})
		}
	}
}

// CurrentSession returns nil for anonymous requests.
func CurrentSession(c *gin.Context) *session.Data {
	v, ok := c.Get(constants.ContextKeySession)
	if !ok {
		return nil
	}
	data, _ := v.(*session.Data)
	return data
}

func SessionID(c *gin.Context) string {
	return c.GetString(constants.ContextKeySessionID)
}
