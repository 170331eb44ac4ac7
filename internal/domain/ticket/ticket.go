package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id            uint
	companyID     uint
	assigneeID    *uint
	title         string
	description   string
	categoryID    *int
	priorityID    *int
	status        vo.TicketStatus
	createdAt     time.Time
	responseDueAt *time.Time
}

// NewTicket opens a ticket for a company. Category and priority may be nil
// when a classifier could not place the ticket.
func NewTicket(companyID uint, title, description string, categoryID, priorityID *int) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	return &Ticket{
		companyID:   companyID,
		title:       title,
		description: description,
		categoryID:  categoryID,
		priorityID:  priorityID,
		status:      vo.StatusOpen,
		createdAt:   time.Now().UTC(),
	}, nil
}

type ReconstructParams struct {
	ID            uint
	CompanyID     uint
	AssigneeID    *uint
	Title         string
	Description   string
	CategoryID    *int
	PriorityID    *int
	Status        vo.TicketStatus
	CreatedAt     time.Time
	ResponseDueAt *time.Time
}

func ReconstructTicket(p ReconstructParams) *Ticket {
	return &Ticket{
		id:            p.ID,
		companyID:     p.CompanyID,
		assigneeID:    p.AssigneeID,
		title:         p.Title,
		description:   p.Description,
		categoryID:    p.CategoryID,
		priorityID:    p.PriorityID,
		status:        p.Status,
		createdAt:     p.CreatedAt,
		responseDueAt: p.ResponseDueAt,
	}
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) CompanyID() uint           { return t.companyID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) Title() string             { return t.title }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) CategoryID() *int          { return t.categoryID }
func (t *Ticket) PriorityID() *int          { return t.priorityID }
func (t *Ticket) Status() vo.TicketStatus   { return t.status }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) ResponseDueAt() *time.Time { return t.responseDueAt }

// BelongsTo reports whether the ticket is owned by the given tenant.
func (t *Ticket) BelongsTo(companyID uint) bool {
	return companyID != 0 && t.companyID == companyID
}

// IsOverdue reports whether the response deadline has passed on a ticket that
// is still being worked.
func (t *Ticket) IsOverdue(now time.Time) bool {
	if t.responseDueAt == nil || t.status.IsTerminal() {
		return false
	}
	return t.responseDueAt.Before(now)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
