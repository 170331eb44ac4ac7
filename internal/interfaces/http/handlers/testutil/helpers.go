package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	rendererOnce sync.Once
	renderer     *views.Renderer
	rendererErr  error
)

func sharedRenderer() *views.Renderer {
	rendererOnce.Do(func() {
		renderer, rendererErr = views.New()
	})
	if rendererErr != nil {
		panic("testutil: failed to parse templates: " + rendererErr.Error())
	}
	return renderer
}

// NewTestContext creates a gin.Context wired to the real page renderer.
func NewTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	return newContext(httptest.NewRequest(method, path, nil))
}

// NewFormContext creates a context carrying an urlencoded form body.
func NewFormContext(method, path string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return newContext(req)
}

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.HTMLRender = sharedRenderer()
	c.Request = req
	return c, w
}

// SetSession simulates the session loading middleware.
func SetSession(c *gin.Context, data *session.Data) {
	c.Set(constants.ContextKeySession, data)
	c.Set(constants.ContextKeySessionID, "test-session-id")
	c.Set(constants.ContextKeyUserID, data.UserID)
	c.Set(constants.ContextKeyUserRole, data.Role.String())
}

// CompanyAdminSession returns a client admin session linked to companyID.
func CompanyAdminSession(userID, companyID uint) *session.Data {
	data := &session.Data{
		UserID:   userID,
		Username: "client",
		Email:    "client@example.com",
		Role:     user.RoleClientAdmin,
	}
	if companyID != 0 {
		data.LinkCompany(companyID)
	}
	return data
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}
