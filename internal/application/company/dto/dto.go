package dto

// MetricsDTO holds the five tenant dashboard counters.
type MetricsDTO struct {
	TotalTickets     int64
	OpenTickets      int64
	ResolvedTickets  int64
	OverdueTickets   int64
	TicketsThisMonth int64
}

// DashboardDTO is the client admin home screen.
type DashboardDTO struct {
	AdminName   string
	CompanyName string
	Metrics     MetricsDTO
}
