package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestTicketStatus_Color(t *testing.T) {
	tests := map[TicketStatus]string{
		StatusOpen:            "primary",
		StatusClosed:          "success",
		StatusPending:         "warning",
		StatusInProgress:      "secondary",
		StatusResolved:        "secondary",
		StatusCancelled:       "secondary",
		TicketStatus("weird"): "secondary",
		TicketStatus(""):      "secondary",
	}
	for status, want := range tests {
		assert.Equal(t, want, status.Color(), "status %q", status)
	}
}

func TestTicketStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestTicketStatus_Label(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.Label())
	assert.Equal(t, "In progress", StatusInProgress.Label())
	assert.Equal(t, "Unknown", TicketStatus("").Label())
}

func TestBadgeForPriority(t *testing.T) {
	tests := []struct {
		id   *int
		want PriorityBadge
	}{
		{id: intPtr(1), want: PriorityBadge{"Low", "success"}},
		{id: intPtr(2), want: PriorityBadge{"Medium", "warning"}},
		{id: intPtr(3), want: PriorityBadge{"High", "danger"}},
		{id: intPtr(4), want: PriorityBadge{"N/A", "secondary"}},
		{id: intPtr(-1), want: PriorityBadge{"N/A", "secondary"}},
		{id: nil, want: PriorityBadge{"N/A", "secondary"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BadgeForPriority(tt.id))
	}
}

func TestClassificationLookup(t *testing.T) {
	id := CategoryIDByName("  Accounts & Access ")
	require.NotNil(t, id)
	assert.Equal(t, 4, *id)

	id = CategoryIDByName("PRINTING")
	require.NotNil(t, id)
	assert.Equal(t, 6, *id)

	assert.Nil(t, CategoryIDByName("Plumbing"))

	id = PriorityIDByName("critical")
	require.NotNil(t, id)
	assert.Equal(t, 4, *id)

	assert.Nil(t, PriorityIDByName("urgent"))
	assert.Len(t, CategoryIDs, 9)
	assert.Len(t, PriorityIDs, 4)
}
