package user

// Role is the single capability string carried by an account. It decides which
// route set the account can reach.
type Role string

const (
	RoleSystemAdmin     Role = "sysAdmin"
	RoleTechAdmin       Role = "admin_tech"
	RoleClientAdmin     Role = "admin_cliente"
	RoleCompanyOperator Role = "admin_op"
	RoleCompanyUser     Role = "company_user"
)

var validRoles = map[Role]bool{
	RoleSystemAdmin:     true,
	RoleTechAdmin:       true,
	RoleClientAdmin:     true,
	RoleCompanyOperator: true,
	RoleCompanyUser:     true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

var roleLabels = map[Role]string{
	RoleSystemAdmin:     "System admin",
	RoleTechAdmin:       "Tech admin",
	RoleClientAdmin:     "Client admin",
	RoleCompanyOperator: "Company operator",
	RoleCompanyUser:     "Company user",
}

// Label is the display name; unknown roles show their raw value.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// DefaultRole is assigned to every self-registered account.
const DefaultRole = RoleClientAdmin

// CompanyRoles are the roles a client admin may give to a company collaborator.
var CompanyRoles = []Role{RoleCompanyOperator, RoleCompanyUser}

// ParseCompanyRole maps a submitted collaborator role onto CompanyRoles,
// falling back to RoleCompanyUser.
func ParseCompanyRole(s string) Role {
	for _, r := range CompanyRoles {
		if string(r) == s {
			return r
		}
	}
	return RoleCompanyUser
}
