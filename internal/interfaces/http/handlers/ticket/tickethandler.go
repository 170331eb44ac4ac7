package ticket

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/common"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

const (
	ListPath   = "/client_admin/tickets"
	NewPath    = "/client_admin/tickets/new"
	ManualPath = "/client_admin/tickets/manual"
	AIPath     = "/client_admin/tickets/ia"
)

type ManualTicketRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
	CategoryID  string `form:"category_id" binding:"required,numeric"`
	PriorityID  string `form:"priority_id" binding:"required,numeric"`
}

type AITicketRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
}

// TicketHandler serves the company-scoped ticket screens.
type TicketHandler struct {
	listUC      usecases.ListCompanyTicketsExecutor
	getUC       usecases.GetCompanyTicketExecutor
	createUC    usecases.CreateTicketExecutor
	createAIUC  usecases.CreateTicketAIExecutor
	referenceUC usecases.GetReferenceDataExecutor
	logger      logger.Interface
}

func NewTicketHandler(
	listUC usecases.ListCompanyTicketsExecutor,
	getUC usecases.GetCompanyTicketExecutor,
	createUC usecases.CreateTicketExecutor,
	createAIUC usecases.CreateTicketAIExecutor,
	referenceUC usecases.GetReferenceDataExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listUC:      listUC,
		getUC:       getUC,
		createUC:    createUC,
		createAIUC:  createAIUC,
		referenceUC: referenceUC,
		logger:      log,
	}
}

// List handles GET /client_admin/tickets
func (h *TicketHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	page, err := h.listUC.Execute(c.Request.Context(), usecases.ListCompanyTicketsQuery{
		CompanyID: companyID(c),
		Page:      pagination.Page,
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, "/client_admin/home")
		return
	}
	common.Render(c, http.StatusOK, views.PageClientTickets, "Tickets", "client_tickets", page)
}

// Show handles GET /client_admin/tickets/:id
func (h *TicketHandler) Show(c *gin.Context) {
	id := common.ParseID(c, "id")
	if id == 0 {
		common.ErrorNotice(c, h.logger, errors.NewNotFoundError("Ticket not found"), ListPath)
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), usecases.GetCompanyTicketQuery{
		TicketID:  id,
		CompanyID: companyID(c),
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, ListPath)
		return
	}
	common.Render(c, http.StatusOK, views.PageClientTicket, fmt.Sprintf("Ticket #%d", detail.ID), "client_tickets", detail)
}

// ChooseMode handles GET /client_admin/tickets/new
func (h *TicketHandler) ChooseMode(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageNewTicket, "New ticket", "op_new_ticket", nil)
}

// ManualForm handles GET /client_admin/tickets/manual
func (h *TicketHandler) ManualForm(c *gin.Context) {
	refs := h.referenceUC.Execute(c.Request.Context())
	common.Render(c, http.StatusOK, views.PageTicketManual, "New ticket", "op_new_ticket", refs)
}

// CreateManual handles POST /client_admin/tickets/manual
func (h *TicketHandler) CreateManual(c *gin.Context) {
	var req ManualTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), ManualPath)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		CompanyID:   companyID(c),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, ManualPath)
		return
	}

	common.Success(c, "Ticket created", fmt.Sprintf("Ticket #%d was created.", result.TicketID), ListPath)
}

// AIForm handles GET /client_admin/tickets/ia
func (h *TicketHandler) AIForm(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageTicketAI, "New ticket with AI", "op_new_ticket", nil)
}

// CreateAI handles POST /client_admin/tickets/ia
func (h *TicketHandler) CreateAI(c *gin.Context) {
	var req AITicketRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), AIPath)
		return
	}

	result, err := h.createAIUC.Execute(c.Request.Context(), usecases.CreateTicketAICommand{
		CompanyID:   companyID(c),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, AIPath)
		return
	}

	text := fmt.Sprintf("Ticket #%d was created. Category: %s. Priority: %s.",
		result.TicketID, labelOrDash(result.CategoryName), labelOrDash(result.PriorityName))
	if !result.FullyClassified() {
		common.Notice(c, http.StatusOK, views.Notice{
			Icon:     views.IconWarning,
			Title:    "Ticket created",
			Text:     text + " Could not classify: " + strings.Join(result.Unclassified, ", ") + ".",
			Redirect: ListPath,
		})
		return
	}
	common.Success(c, "Ticket created", text, ListPath)
}

func companyID(c *gin.Context) uint {
	return middleware.CurrentSession(c).Company()
}

func labelOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
