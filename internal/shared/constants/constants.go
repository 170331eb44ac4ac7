package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination for every list screen is fixed.
	DefaultPage = 1
	PageSize    = 10

	// Number of tickets shown on the admin home screen.
	RecentTicketsLimit = 5

	// Form and header names
	CSRFFormField  = "csrf_token"
	CSRFCookieName = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"

	// Context keys
	ContextKeySession   = "session"
	ContextKeySessionID = "session_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyCSRFToken = "csrf_token"

	// Database table names
	TableUsers        = "users"
	TableCompanies    = "companies"
	TableCompanyUsers = "company_users"
	TableTickets      = "tickets"
	TableCategories   = "categories"
	TablePriorities   = "priorities"

	// Display fallbacks
	UncategorizedLabel = "uncategorized"
	DefaultAdminName   = "Administrator"
	DefaultCompanyName = "No company linked"

	// Generic user-facing messages
	ErrMsgTryAgain  = "Something went wrong. Please try again."
	ErrMsgNoCompany = "Your account is not linked to a company yet. Ask your company administrator to add you."
)
