package valueobjects

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusCancelled  TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusCancelled:  true,
}

// statusColors maps a status onto a bootstrap contextual class.
var statusColors = map[TicketStatus]string{
	StatusOpen:    "primary",
	StatusClosed:  "success",
	StatusPending: "warning",
}

const defaultColor = "secondary"

// DoneStatuses count as resolved on dashboards.
var DoneStatuses = []TicketStatus{StatusResolved, StatusClosed}

// TerminalStatuses never become overdue.
var TerminalStatuses = []TicketStatus{StatusResolved, StatusClosed, StatusCancelled}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// Color is total: unknown statuses get "secondary".
func (s TicketStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultColor
}

// Label is the human readable status text.
func (s TicketStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "In progress"
	case "":
		return "Unknown"
	default:
		r := []rune(string(s))
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		return string(r)
	}
}
