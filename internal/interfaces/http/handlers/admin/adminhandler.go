package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/application/admin/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/common"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

const homePath = "/admin"

// AdminHandler serves the system administrator screens.
type AdminHandler struct {
	dashboardUC usecases.GetDashboardExecutor
	ticketsUC   usecases.ListTicketsExecutor
	usersUC     usecases.ListUsersExecutor
	companiesUC usecases.ListCompaniesExecutor
	logger      logger.Interface
}

func NewAdminHandler(
	dashboardUC usecases.GetDashboardExecutor,
	ticketsUC usecases.ListTicketsExecutor,
	usersUC usecases.ListUsersExecutor,
	companiesUC usecases.ListCompaniesExecutor,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		dashboardUC: dashboardUC,
		ticketsUC:   ticketsUC,
		usersUC:     usersUC,
		companiesUC: companiesUC,
		logger:      log,
	}
}

// Home handles GET /admin
func (h *AdminHandler) Home(c *gin.Context) {
	data := h.dashboardUC.Execute(c.Request.Context())
	common.Render(c, http.StatusOK, views.PageAdminHome, "Administration", "admin_home", data)
}

// Tickets handles GET /admin/tickets
func (h *AdminHandler) Tickets(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	page, err := h.ticketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Page:   pagination.Page,
		Search: strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, homePath)
		return
	}
	common.Render(c, http.StatusOK, views.PageAdminTickets, "All tickets", "admin_tickets", page)
}

// Users handles GET /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users := h.usersUC.Execute(c.Request.Context())
	common.Render(c, http.StatusOK, views.PageAdminUsers, "Users", "admin_users", users)
}

// Companies handles GET /admin/companies
func (h *AdminHandler) Companies(c *gin.Context) {
	companies, err := h.companiesUC.Execute(c.Request.Context())
	if err != nil {
		common.ErrorNotice(c, h.logger, err, homePath)
		return
	}
	common.Render(c, http.StatusOK, views.PageAdminCompanies, "Companies", "admin_companies", companies)
}

// TechDashboard handles GET /admin/tech-dashboard
func (h *AdminHandler) TechDashboard(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageTechDashboard, "Technical dashboard", "tech_dashboard", nil)
}
