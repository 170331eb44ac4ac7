package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

const csrfTokenBytes = 32

// SetSessionCookie stores the signed session token. maxAge is in seconds.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	writeCookie(c, cfg, cfg.Name, token, maxAge)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	writeCookie(c, cfg, cfg.Name, "", -1)
}

// GetTokenFromCookie returns "" when the cookie is absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, _ := c.Cookie(name)
	return token
}

// SetCSRFCookie issues a fresh double-submit token and returns it for
// embedding in forms. A zero maxAge makes it a browser-session cookie.
func SetCSRFCookie(c *gin.Context, cfg config.CookieConfig, maxAge int) string {
	buf := make([]byte, csrfTokenBytes)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)
	writeCookie(c, cfg, constants.CSRFCookieName, token, maxAge)
	return token
}

// writeCookie always sets HttpOnly; the scope and SameSite mode come from cfg.
func writeCookie(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSiteMode(cfg.SameSite),
	})
}

func sameSiteMode(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
