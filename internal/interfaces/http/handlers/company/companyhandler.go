package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/application/company/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/common"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

const (
	CreatePath = "/company/create"
	HomePath   = "/client_admin/home"
	UsersPath  = "/client_admin/users"
)

// SessionSaver persists a modified session under its current id.
type SessionSaver interface {
	Save(c *gin.Context, sid string, data *session.Data) error
}

// CompanyHandler serves company onboarding and the client admin screens.
type CompanyHandler struct {
	createCompanyUC usecases.CreateCompanyExecutor
	dashboardUC     usecases.GetDashboardExecutor
	createUserUC    usecases.CreateCompanyUserExecutor
	sessions        SessionSaver
	logger          logger.Interface
}

func NewCompanyHandler(
	createCompanyUC usecases.CreateCompanyExecutor,
	dashboardUC usecases.GetDashboardExecutor,
	createUserUC usecases.CreateCompanyUserExecutor,
	sessions SessionSaver,
	log logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC: createCompanyUC,
		dashboardUC:     dashboardUC,
		createUserUC:    createUserUC,
		sessions:        sessions,
		logger:          log,
	}
}

type CreateCompanyRequest struct {
	Name           string `form:"name" binding:"required,max=200"`
	CommercialName string `form:"commercialName" binding:"max=200"`
	BusinessName   string `form:"businessName" binding:"max=200"`
	CountryCode    string `form:"countryCode" binding:"max=10"`
	CountryNumber  string `form:"countryNumber" binding:"max=10"`
	PhoneNumber    string `form:"phoneNumber" binding:"max=30"`
	City           string `form:"countryCity" binding:"max=100"`
	StateProvince  string `form:"stateProvince" binding:"max=100"`
	AddressPrimary string `form:"addressPrimary" binding:"max=255"`
	Website        string `form:"webSite" binding:"max=255"`
	ImageURL       string `form:"imageUrl" binding:"max=500"`
	Status         string `form:"status"`
}

type CreateCompanyUserRequest struct {
	Username  string `form:"username_company" binding:"required,max=100"`
	Email     string `form:"email" binding:"required,email,max=255"`
	Password  string `form:"password" binding:"required,max=128"`
	Role      string `form:"role" binding:"max=30"`
	Active    string `form:"is_activate"`
	SelfieURL string `form:"imageSelfieUrl" binding:"max=500"`
	Phone     string `form:"phoneNumber" binding:"max=30"`
}

// CreateForm handles GET /company/create
func (h *CompanyHandler) CreateForm(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageCreateCompany, "Register company", "client_dashboard", nil)
}

// Create handles POST /company/create
func (h *CompanyHandler) Create(c *gin.Context) {
	current := middleware.CurrentSession(c)
	var ownerID uint
	if current != nil {
		ownerID = current.UserID
	}

	var req CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), CreatePath)
		return
	}

	result, err := h.createCompanyUC.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		OwnerID:        ownerID,
		Name:           req.Name,
		CommercialName: req.CommercialName,
		BusinessName:   req.BusinessName,
		CountryCode:    req.CountryCode,
		CountryNumber:  req.CountryNumber,
		PhoneNumber:    req.PhoneNumber,
		City:           req.City,
		StateProvince:  req.StateProvince,
		AddressPrimary: req.AddressPrimary,
		Website:        req.Website,
		ImageURL:       req.ImageURL,
		Active:         common.Checked(req.Status),
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, CreatePath)
		return
	}

	linked := *current
	linked.LinkCompany(result.CompanyID)
	if err := h.sessions.Save(c, middleware.SessionID(c), &linked); err != nil {
		// The company exists; the next login links it from the database.
		h.logger.Warnw("failed to link company to session",
			"error", err,
			"user_id", linked.UserID,
			"company_id", result.CompanyID,
		)
	}

	h.logger.Infow("company registered", "company_id", result.CompanyID, "owner_id", ownerID)
	common.Success(c, "Company registered", "Your company was registered successfully.", HomePath)
}

// Home handles GET /client_admin/home
func (h *CompanyHandler) Home(c *gin.Context) {
	current := middleware.CurrentSession(c)
	data := h.dashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		UserID:    current.UserID,
		CompanyID: current.Company(),
	})
	common.Render(c, http.StatusOK, views.PageClientHome, "Dashboard", "client_dashboard", data)
}

// UsersForm handles GET /client_admin/users
func (h *CompanyHandler) UsersForm(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageCreateUser, "Register collaborator", "client_users", nil)
}

// CreateUser handles POST /client_admin/users
func (h *CompanyHandler) CreateUser(c *gin.Context) {
	current := middleware.CurrentSession(c)

	var req CreateCompanyUserRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), UsersPath)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateCompanyUserCommand{
		CompanyID: current.Company(),
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		Role:      req.Role,
		Active:    common.Checked(req.Active),
		SelfieURL: req.SelfieURL,
		Phone:     req.Phone,
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, UsersPath)
		return
	}

	h.logger.Infow("collaborator registered",
		"company_id", current.Company(),
		"company_user_id", result.CompanyUserID,
		"role", result.Role,
	)
	common.Success(c, "Collaborator registered", "The collaborator can now be assigned tickets.", UsersPath)
}
