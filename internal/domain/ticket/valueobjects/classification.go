package valueobjects

import "strings"

// NamedID is a reference-table row known to the classification service.
type NamedID struct {
	ID   int
	Name string
}

// CategoryCatalog and PriorityCatalog list the names the classification
// service answers with, in sort order, with their reference-table ids.
var (
	CategoryCatalog = []NamedID{
		{ID: 1, Name: "Hardware"},
		{ID: 2, Name: "Software"},
		{ID: 3, Name: "Network"},
		{ID: 4, Name: "Accounts & Access"},
		{ID: 5, Name: "Email"},
		{ID: 6, Name: "Printing"},
		{ID: 7, Name: "Security"},
		{ID: 8, Name: "Database"},
		{ID: 9, Name: "Other"},
	}

	PriorityCatalog = []NamedID{
		{ID: 1, Name: "Low"},
		{ID: 2, Name: "Medium"},
		{ID: 3, Name: "High"},
		{ID: 4, Name: "Critical"},
	}

	CategoryIDs = indexByName(CategoryCatalog)
	PriorityIDs = indexByName(PriorityCatalog)
)

func indexByName(entries []NamedID) map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[normalizeName(e.Name)] = e.ID
	}
	return m
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CategoryIDByName returns nil for names outside CategoryCatalog.
func CategoryIDByName(name string) *int {
	if id, ok := CategoryIDs[normalizeName(name)]; ok {
		return &id
	}
	return nil
}

// PriorityIDByName returns nil for names outside PriorityCatalog.
func PriorityIDByName(name string) *int {
	if id, ok := PriorityIDs[normalizeName(name)]; ok {
		return &id
	}
	return nil
}
