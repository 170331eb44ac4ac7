package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// CSRF implements the double submit cookie pattern for HTML forms. Safe
// requests make sure the browser holds a token and expose it to templates.
// Mutating requests must echo the cookie value in the csrf_token form field
// or the X-CSRF-Token header.
func CSRF(cookieConfig config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, err := c.Cookie(constants.CSRFCookieName)
		if err != nil {
			cookieToken = ""
		}

		if isSafeMethod(c.Request.Method) {
			if cookieToken == "" {
				cookieToken = utils.SetCSRFCookie(c, cookieConfig, 0)
			}
			c.Set(constants.ContextKeyCSRFToken, cookieToken)
			c.Next()
			return
		}

		submitted := c.PostForm(constants.CSRFFormField)
		if submitted == "" {
			submitted = c.GetHeader(constants.CSRFHeaderName)
		}

		if cookieToken == "" || submitted == "" ||
			subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) != 1 {
			abortWithNotice(c, http.StatusForbidden, views.Notice{
				Icon:     views.IconWarning,
				Title:    "Form expired",
				Text:     "The form expired. Please submit it again.",
				Redirect: c.Request.URL.Path,
			})
			return
		}

		c.Set(constants.ContextKeyCSRFToken, cookieToken)
		c.Next()
	}
}

// CSRFToken returns the token forms must embed.
func CSRFToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyCSRFToken)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
