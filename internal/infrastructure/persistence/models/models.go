package models

// All lists every table model, in creation order.
func All() []any {
	return []any{
		&UserModel{},
		&CompanyModel{},
		&CompanyUserModel{},
		&CategoryModel{},
		&PriorityModel{},
		&TicketModel{},
	}
}
