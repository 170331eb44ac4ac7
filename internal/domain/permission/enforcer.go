// Package permission names the screens that are guarded by role.
package permission

// Resource is a group of routes that share one access rule.
type Resource string

const (
	ResourceAdmin         Resource = "admin"
	ResourceTechDashboard Resource = "tech_dashboard"
	ResourceCompanySetup  Resource = "company_setup"
	ResourceCompany       Resource = "company"
	ResourceTicketCreate  Resource = "ticket_create"
)

type Action string

const (
	ActionView   Action = "view"
	ActionManage Action = "manage"
)

// Enforcer answers whether a role may perform an action on a resource.
type Enforcer interface {
	Enforce(role string, resource Resource, action Action) (bool, error)
}
