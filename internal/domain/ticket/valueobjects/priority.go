package valueobjects

// PriorityBadge is how a priority id is shown in ticket tables.
type PriorityBadge struct {
	Label string
	Color string
}

var priorityBadges = map[int]PriorityBadge{
	1: {Label: "Low", Color: "success"},
	2: {Label: "Medium", Color: "warning"},
	3: {Label: "High", Color: "danger"},
}

var unknownPriority = PriorityBadge{Label: "N/A", Color: defaultColor}

// BadgeForPriority is total: a nil or unmapped id yields ("N/A", "secondary").
func BadgeForPriority(id *int) PriorityBadge {
	if id == nil {
		return unknownPriority
	}
	if b, ok := priorityBadges[*id]; ok {
		return b
	}
	return unknownPriority
}
