package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the zero-based index of the first row on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NewPagination normalizes a requested page; anything below 1 becomes the first page.
// The page size is fixed for every list screen.
func NewPagination(page int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	return Pagination{Page: page, PageSize: constants.PageSize}
}

// ParsePagination reads the "page" query parameter from the request.
func ParsePagination(c *gin.Context) Pagination {
	page := constants.DefaultPage
	if val := c.Query("page"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			page = n
		}
	}
	return NewPagination(page)
}

// TotalPages returns ceil(total/pageSize); zero rows give zero pages.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// TotalPagesAtLeastOne is TotalPages with an empty result still rendered as one page.
func TotalPagesAtLeastOne(total int64, pageSize int) int {
	if pages := TotalPages(total, pageSize); pages > 0 {
		return pages
	}
	return 1
}
