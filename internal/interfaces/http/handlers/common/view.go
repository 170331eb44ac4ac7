// Package common holds the rendering helpers shared by every HTML handler.
package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/middleware"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// Render draws a page inside the layout with the caller's session and the
// CSRF token forms must embed.
func Render(c *gin.Context, status int, page, title, active string, data any) {
	c.HTML(status, page, views.Page{
		Title:     title,
		Active:    active,
		Session:   middleware.CurrentSession(c),
		CSRFToken: middleware.CSRFToken(c),
		Data:      data,
	})
}

func Notice(c *gin.Context, status int, n views.Notice) {
	Render(c, status, views.PageNotice, n.Title, "", n)
}

func Success(c *gin.Context, title, text, redirect string) {
	Notice(c, http.StatusOK, views.Notice{Icon: views.IconSuccess, Title: title, Text: text, Redirect: redirect})
}

// ErrorNotice shows err as a notice that sends the user to redirect.
// Upstream and internal failures are logged and shown with their generic
// message only.
func ErrorNotice(c *gin.Context, log logger.Interface, err error, redirect string) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		log.Errorw("unhandled error", "error", err, "path", c.Request.URL.Path)
		Notice(c, http.StatusInternalServerError, views.Notice{
			Icon:     views.IconError,
			Title:    "Error",
			Text:     constants.ErrMsgTryAgain,
			Redirect: redirect,
		})
		return
	}

	switch appErr.Type {
	case errors.ErrorTypeUpstream, errors.ErrorTypeInternal:
		log.Errorw("request failed", "error", err, "path", c.Request.URL.Path)
	case errors.ErrorTypeUnauthorized, errors.ErrorTypeTooManyAttempts:
		if errors.ShouldLogAuthError(err) {
			log.Warnw("authentication failed", "error", err, "client_ip", c.ClientIP())
		}
	default:
		log.Debugw("request rejected", "error", err, "path", c.Request.URL.Path)
	}

	status := appErr.Code
	if status == 0 {
		status = http.StatusInternalServerError
	}
	Notice(c, status, views.Notice{
		Icon:     iconFor(appErr.Type),
		Title:    titleFor(appErr.Type),
		Text:     appErr.Message,
		Redirect: redirect,
	})
}

func iconFor(t errors.ErrorType) string {
	switch t {
	case errors.ErrorTypeNotFound, errors.ErrorTypeTooManyAttempts:
		return views.IconWarning
	default:
		return views.IconError
	}
}

func titleFor(t errors.ErrorType) string {
	switch t {
	case errors.ErrorTypeValidation:
		return "Incomplete data"
	case errors.ErrorTypeUnauthorized:
		return "Authentication error"
	case errors.ErrorTypeConflict:
		return "Already registered"
	case errors.ErrorTypeForbidden:
		return "Access denied"
	case errors.ErrorTypeNotFound:
		return "Not found"
	case errors.ErrorTypeUpstream:
		return "Service unavailable"
	case errors.ErrorTypeTooManyAttempts:
		return "Too many attempts"
	default:
		return "Error"
	}
}

// ParseID reads a positive integer path parameter. Anything else yields 0.
func ParseID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// Checked reports whether a bound HTML checkbox value means ticked.
func Checked(value string) bool {
	return value == "on"
}
