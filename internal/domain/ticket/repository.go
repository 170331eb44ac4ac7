package ticket

import (
	"context"
	"time"

	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	// FindByIDForCompany returns (nil, nil) unless the ticket exists and is
	// owned by companyID.
	FindByIDForCompany(ctx context.Context, id, companyID uint) (*Ticket, error)
	// List returns one page, newest first, plus the exact total.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	Count(ctx context.Context, filter TicketFilter) (int64, error)
}

// TicketFilter narrows List and Count. Zero values mean "no constraint".
type TicketFilter struct {
	CompanyID       *uint
	Statuses        []vo.TicketStatus
	ExcludeStatuses []vo.TicketStatus
	// Search is matched case-insensitively against title or description.
	Search       string
	DueBefore    *time.Time
	CreatedSince *time.Time
	Page         int
	PageSize     int
}

type ReferenceRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListPriorities(ctx context.Context) ([]Priority, error)
	CategoriesByIDs(ctx context.Context, ids []int) (map[int]Category, error)
	PrioritiesByIDs(ctx context.Context, ids []int) (map[int]Priority, error)
}
