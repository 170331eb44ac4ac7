package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/application/auth/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/session"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/common"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

const (
	registerPath = "/register"
)

// destinationPaths maps a login outcome to the page the user lands on.
var destinationPaths = map[usecases.Destination]string{
	usecases.DestinationAdminHome:        "/admin",
	usecases.DestinationTechDashboard:    "/admin/tech-dashboard",
	usecases.DestinationCompanyDashboard: "/client_admin/home",
	usecases.DestinationCompanyCreate:    "/company/create",
	usecases.DestinationLanding:          middleware.LandingPath,
}

type AuthHandler struct {
	registerUseCase registerUseCase
	loginUseCase    loginUseCase
	sessions        SessionManager
	recorder        LoginRecorder
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	sessions SessionManager,
	recorder LoginRecorder,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		sessions:        sessions,
		recorder:        recorder,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required,max=50"`
	Email    string `form:"email" binding:"required,max=254"`
	Password string `form:"password" binding:"required,max=128"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageRegister, "Register", "register", nil)
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), registerPath)
		return
	}

	_, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		common.ErrorNotice(c, h.logger, err, registerPath)
		return
	}

	common.Success(c, "Account registered", "Your account was created. Please log in.", middleware.LoginPath)
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	common.Render(c, http.StatusOK, views.PageLogin, "Log in", "login", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorNotice(c, h.logger, utils.BindingError(err), middleware.LoginPath)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.IsSecurityEvent(err) {
			h.recorder.LoginAttempt(false)
		}
		common.ErrorNotice(c, h.logger, err, middleware.LoginPath)
		return
	}
	h.recorder.LoginAttempt(true)

	// A fresh id on every login so a pre-login cookie is never promoted.
	if sid := middleware.SessionID(c); sid != "" {
		if err := h.sessions.Destroy(c, sid); err != nil {
			h.logger.Warnw("failed to drop previous session", "error", err)
		}
	}

	if _, err := h.sessions.Start(c, &session.Data{
		UserID:    result.UserID,
		Username:  result.Username,
		Email:     result.Email,
		Role:      result.Role,
		CompanyID: result.CompanyID,
	}); err != nil {
		common.ErrorNotice(c, h.logger, errors.NewInternalError("Could not start your session").WithCause(err), middleware.LoginPath)
		return
	}

	redirect, ok := destinationPaths[result.Destination]
	if !ok {
		redirect = middleware.LandingPath
	}

	if result.Destination == usecases.DestinationCompanyCreate {
		common.Notice(c, http.StatusOK, views.Notice{
			Icon:     views.IconInfo,
			Title:    "Register company",
			Text:     "You must register your company to continue.",
			Redirect: redirect,
		})
		return
	}

	common.Success(c, "Welcome!", "Login successful.", redirect)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c, middleware.SessionID(c)); err != nil {
		h.logger.Warnw("failed to destroy session", "error", err)
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
