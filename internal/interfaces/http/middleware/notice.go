package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/views"
)

func abortWithNotice(c *gin.Context, status int, n views.Notice) {
	c.HTML(status, views.PageNotice, views.Page{
		Title:   n.Title,
		Session: CurrentSession(c),
		Data:    n,
	})
	c.Abort()
}
