package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

var testCookieConfig = config.CookieConfig{Name: "helpdesk_session", Path: "/", SameSite: "Strict", Secure: true}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetSessionCookie(c, testCookieConfig, "tok", 3600)
	cookie := findCookie(w.Result().Cookies(), "helpdesk_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ClearSessionCookie(c, testCookieConfig)
	cookie = findCookie(w.Result().Cookies(), "helpdesk_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestSetCSRFCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	token := SetCSRFCookie(c, testCookieConfig, 60)
	assert.Len(t, token, csrfTokenBytes*2)

	cookie := findCookie(w.Result().Cookies(), constants.CSRFCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.NotEqual(t, token, SetCSRFCookie(c, testCookieConfig, 60))
}

func TestGetTokenFromCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetTokenFromCookie(c, "helpdesk_session"))

	c.Request.AddCookie(&http.Cookie{Name: "helpdesk_session", Value: "abc"})
	assert.Equal(t, "abc", GetTokenFromCookie(c, "helpdesk_session"))
}

func TestSameSiteMode(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, sameSiteMode("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, sameSiteMode("None"))
	assert.Equal(t, http.SameSiteLaxMode, sameSiteMode("Lax"))
	assert.Equal(t, http.SameSiteLaxMode, sameSiteMode(""))
}
