// Package views holds the server rendered HTML pages. Every page is parsed
// together with the shared layout and exposed to gin through render.HTMLRender.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
)

//go:embed templates
var files embed.FS

const (
	layoutFile = "templates/layout.html"
	pagesDir   = "templates/pages"
	rootName   = "layout"
)

// Page names used by handlers.
const (
	PageIndex          = "main/index"
	PageNotice         = "main/notice"
	PageLogin          = "auth/login"
	PageRegister       = "auth/register"
	PageAdminHome      = "admin/home"
	PageAdminTickets   = "admin/tickets"
	PageAdminUsers     = "admin/users"
	PageAdminCompanies = "admin/companies"
	PageTechDashboard  = "admin/tech_dashboard"
	PageCreateCompany  = "client/create_company"
	PageClientHome     = "client/home"
	PageCreateUser     = "client/create_user"
	PageClientTickets  = "client/tickets"
	PageClientTicket   = "client/ticket"
	PageNewTicket      = "client/new_ticket"
	PageTicketManual   = "client/ticket_manual"
	PageTicketAI       = "client/ticket_ai"
)

// Page is the data every template receives. Data carries the page specific
// payload.
type Page struct {
	Title     string
	Active    string
	Session   *session.Data
	CSRFToken string
	Data      any
}

func (p Page) LoggedIn() bool { return p.Session != nil }

func (p Page) Username() string {
	if p.Session == nil {
		return ""
	}
	if p.Session.Username != "" {
		return p.Session.Username
	}
	return p.Session.Email
}

func (p Page) hasRole(roles ...user.Role) bool {
	if p.Session == nil {
		return false
	}
	for _, r := range roles {
		if p.Session.Role == r {
			return true
		}
	}
	return false
}

func (p Page) IsSystemAdmin() bool { return p.hasRole(user.RoleSystemAdmin) }
func (p Page) IsTechAdmin() bool   { return p.hasRole(user.RoleTechAdmin) }
func (p Page) IsClientAdmin() bool { return p.hasRole(user.RoleClientAdmin) }

func (p Page) CanCreateTickets() bool {
	return p.hasRole(user.RoleClientAdmin, user.RoleCompanyOperator)
}

// Notice is a one shot message page that sends the browser on to Redirect.
type Notice struct {
	Icon     string
	Title    string
	Text     string
	Redirect string
}

const (
	IconSuccess = "success"
	IconError   = "error"
	IconWarning = "warning"
	IconInfo    = "info"
)

// Renderer implements render.HTMLRender over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses the layout and every page. It fails on the first template error.
func New() (*Renderer, error) {
	layout, err := template.New(rootName).ParseFS(files, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(files, pagesDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}
		clone, err := layout.Clone()
		if err != nil {
			return err
		}
		t, err := clone.ParseFS(files, p)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, pagesDir+"/"), ".html")
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Instance returns the gin render for a page. Unknown names fall back to the
// notice page so a typo never panics a request.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages[PageNotice]
		data = Page{Title: "Error", Data: Notice{Icon: IconError, Title: "Error", Text: "Page not found", Redirect: "/"}}
	}
	return render.HTML{Template: t, Name: path.Base(layoutFile), Data: data}
}

// Names lists the parsed pages, sorted.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
