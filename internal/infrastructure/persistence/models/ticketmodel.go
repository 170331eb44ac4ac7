package models

import "time"

type TicketModel struct {
	ID            uint       `gorm:"primaryKey" json:"id,omitempty"`
	CompanyID     uint       `gorm:"not null;index" json:"company_id"`
	AssigneeID    *uint      `gorm:"index" json:"assignee_id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	CategoryID    *int       `gorm:"index" json:"category_id"`
	PriorityID    *int       `gorm:"index" json:"priority_id"`
	Status        string     `gorm:"size:20;not null;index" json:"status"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
	ResponseDueAt *time.Time `gorm:"index" json:"response_due_at"`

	// No foreign key associations; lookups are batched by the application.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CategoryModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type PriorityModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Code      string `gorm:"size:20;not null" json:"code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (PriorityModel) TableName() string {
	return "priorities"
}
