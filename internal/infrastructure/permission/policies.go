package permission

import (
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/permission"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
)

type policy struct {
	role     user.Role
	resource permission.Resource
	action   permission.Action
}

var defaultPolicies = []policy{
	{user.RoleSystemAdmin, permission.ResourceAdmin, permission.ActionView},

	{user.RoleTechAdmin, permission.ResourceTechDashboard, permission.ActionView},

	{user.RoleClientAdmin, permission.ResourceCompanySetup, permission.ActionManage},
	{user.RoleClientAdmin, permission.ResourceCompany, permission.ActionView},
	{user.RoleClientAdmin, permission.ResourceCompany, permission.ActionManage},
	{user.RoleClientAdmin, permission.ResourceTicketCreate, permission.ActionManage},

	{user.RoleCompanyOperator, permission.ResourceTicketCreate, permission.ActionManage},
}

func (e *Enforcer) loadDefaults() error {
	for _, p := range defaultPolicies {
		if err := e.AddPolicy(string(p.role), p.resource, p.action); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.role, p.resource, p.action, err)
		}
	}
	e.logger.Debugw("role policies loaded", "count", len(defaultPolicies))
	return nil
}
