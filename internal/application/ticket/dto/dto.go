package dto

import (
	"html/template"
	"sort"
	"time"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/shared/biztime"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

// TicketRowDTO is one line of a ticket table with display attributes
// already resolved.
type TicketRowDTO struct {
	ID            uint
	CompanyID     uint
	CompanyName   string
	Title         string
	Description   string
	Status        string
	StatusLabel   string
	StatusColor   string
	CategoryID    *int
	CategoryName  string
	PriorityID    *int
	PriorityName  string
	PriorityColor string
	CreatedAt     time.Time
	CreatedAtText string
	ResponseDueAt *time.Time
	ResponseDue   string
	Overdue       bool
}

// TicketDetailDTO adds the rendered description to a row.
type TicketDetailDTO struct {
	TicketRowDTO
	AssigneeID      *uint
	DescriptionHTML template.HTML
}

// Lookups holds reference data fetched once for a batch of tickets.
// Missing entries fall back to neutral labels.
type Lookups struct {
	Categories map[int]ticket.Category
	Priorities map[int]ticket.Priority
	Companies  map[uint]string
}

// TicketPageDTO is one page of a paginated ticket list.
type TicketPageDTO struct {
	Tickets    []TicketRowDTO
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	Search     string
}

func (p *TicketPageDTO) HasPrev() bool { return p.Page > 1 }
func (p *TicketPageDTO) HasNext() bool { return p.Page < p.TotalPages }
func (p *TicketPageDTO) PrevPage() int { return p.Page - 1 }
func (p *TicketPageDTO) NextPage() int { return p.Page + 1 }

// ReferenceDataDTO feeds the manual ticket form.
type ReferenceDataDTO struct {
	Categories []ticket.Category
	Priorities []ticket.Priority
}

// ToRow converts a ticket into a table row. now decides the overdue flag.
func ToRow(t *ticket.Ticket, lk Lookups, now time.Time) TicketRowDTO {
	badge := vo.BadgeForPriority(t.PriorityID())
	row := TicketRowDTO{
		ID:            t.ID(),
		CompanyID:     t.CompanyID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		StatusLabel:   t.Status().Label(),
		StatusColor:   t.Status().Color(),
		CategoryID:    t.CategoryID(),
		CategoryName:  constants.UncategorizedLabel,
		PriorityID:    t.PriorityID(),
		PriorityName:  badge.Label,
		PriorityColor: badge.Color,
		CreatedAt:     t.CreatedAt(),
		CreatedAtText: biztime.Format(t.CreatedAt(), biztime.DisplayLayout),
		ResponseDueAt: t.ResponseDueAt(),
		Overdue:       t.IsOverdue(now),
	}

	if id := t.CategoryID(); id != nil {
		if c, ok := lk.Categories[*id]; ok && c.Name != "" {
			row.CategoryName = c.Name
		}
	}
	if id := t.PriorityID(); id != nil {
		if p, ok := lk.Priorities[*id]; ok && p.Name != "" {
			row.PriorityName = p.Name
		}
	}
	if name, ok := lk.Companies[t.CompanyID()]; ok {
		row.CompanyName = name
	}
	if due := t.ResponseDueAt(); due != nil {
		row.ResponseDue = biztime.Format(*due, biztime.DisplayLayout)
	}
	return row
}

func ToRows(tickets []*ticket.Ticket, lk Lookups, now time.Time) []TicketRowDTO {
	rows := make([]TicketRowDTO, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ToRow(t, lk, now))
	}
	return rows
}

// CategoryIDs returns the distinct category ids referenced by tickets.
func CategoryIDs(tickets []*ticket.Ticket) []int {
	return distinctInts(tickets, (*ticket.Ticket).CategoryID)
}

func PriorityIDs(tickets []*ticket.Ticket) []int {
	return distinctInts(tickets, (*ticket.Ticket).PriorityID)
}

func CompanyIDs(tickets []*ticket.Ticket) []uint {
	seen := make(map[uint]struct{}, len(tickets))
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if _, ok := seen[t.CompanyID()]; ok {
			continue
		}
		seen[t.CompanyID()] = struct{}{}
		ids = append(ids, t.CompanyID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func distinctInts(tickets []*ticket.Ticket, get func(*ticket.Ticket) *int) []int {
	seen := make(map[int]struct{}, len(tickets))
	ids := make([]int, 0, len(tickets))
	for _, t := range tickets {
		id := get(t)
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	sort.Ints(ids)
	return ids
}
