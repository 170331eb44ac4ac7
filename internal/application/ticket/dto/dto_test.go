package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
)

func intPtr(i int) *int { return &i }

func sampleTicket(id, companyID uint, category, priority *int, status vo.TicketStatus) *ticket.Ticket {
	return ticket.ReconstructTicket(ticket.ReconstructParams{
		ID:          id,
		CompanyID:   companyID,
		Title:       "Printer jammed",
		Description: "Tray 2",
		CategoryID:  category,
		PriorityID:  priority,
		Status:      status,
		CreatedAt:   time.Date(2025, 3, 17, 9, 30, 0, 0, time.UTC),
	})
}

func TestToRow_WithLookups(t *testing.T) {
	tk := sampleTicket(1, 4, intPtr(6), intPtr(3), vo.StatusOpen)
	lk := Lookups{
		Categories: map[int]ticket.Category{6: {ID: 6, Name: "Printing"}},
		Priorities: map[int]ticket.Priority{3: {ID: 3, Name: "High"}},
		Companies:  map[uint]string{4: "Acme"},
	}

	row := ToRow(tk, lk, time.Now())

	assert.Equal(t, "Printing", row.CategoryName)
	assert.Equal(t, "High", row.PriorityName)
	assert.Equal(t, "danger", row.PriorityColor)
	assert.Equal(t, "primary", row.StatusColor)
	assert.Equal(t, "Open", row.StatusLabel)
	assert.Equal(t, "Acme", row.CompanyName)
	assert.Equal(t, "2025-03-17 09:30", row.CreatedAtText)
	assert.False(t, row.Overdue)
}

func TestToRow_Fallbacks(t *testing.T) {
	tk := sampleTicket(1, 4, intPtr(99), nil, "weird")

	row := ToRow(tk, Lookups{}, time.Now())

	assert.Equal(t, "uncategorized", row.CategoryName)
	assert.Equal(t, "N/A", row.PriorityName)
	assert.Equal(t, "secondary", row.PriorityColor)
	assert.Equal(t, "secondary", row.StatusColor)
	assert.Empty(t, row.CompanyName)
	assert.Empty(t, row.ResponseDue)
}

func TestToRow_Overdue(t *testing.T) {
	due := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	tk := ticket.ReconstructTicket(ticket.ReconstructParams{
		ID: 1, CompanyID: 1, Title: "t", Description: "d",
		Status: vo.StatusPending, CreatedAt: due.Add(-48 * time.Hour), ResponseDueAt: &due,
	})

	row := ToRow(tk, Lookups{}, due.Add(time.Hour))
	assert.True(t, row.Overdue)
	assert.Equal(t, "2025-03-18 00:00", row.ResponseDue)
}

func TestDistinctIDs(t *testing.T) {
	tickets := []*ticket.Ticket{
		sampleTicket(1, 3, intPtr(2), intPtr(1), vo.StatusOpen),
		sampleTicket(2, 1, intPtr(2), nil, vo.StatusOpen),
		sampleTicket(3, 3, nil, intPtr(3), vo.StatusOpen),
		sampleTicket(4, 2, intPtr(1), intPtr(1), vo.StatusOpen),
	}

	assert.Equal(t, []int{1, 2}, CategoryIDs(tickets))
	assert.Equal(t, []int{1, 3}, PriorityIDs(tickets))
	assert.Equal(t, []uint{1, 2, 3}, CompanyIDs(tickets))
	assert.Empty(t, CategoryIDs(nil))
}

func TestTicketPageDTO_Navigation(t *testing.T) {
	p := &TicketPageDTO{Page: 1, TotalPages: 2}
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 2, p.NextPage())

	p.Page = 2
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, 1, p.PrevPage())
}
