package ticket

// Category and Priority are static lookup rows used for labels.
type Category struct {
	ID        int
	Name      string
	SortOrder int
}

type Priority struct {
	ID        int
	Code      string
	Name      string
	SortOrder int
}
