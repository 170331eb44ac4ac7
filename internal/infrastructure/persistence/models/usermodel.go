package models

import "time"

// Row structs carry json tags as well so the REST gateway can decode them.

type UserModel struct {
	ID           uint      `gorm:"primaryKey" json:"id,omitempty"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"password_hash"`
	Role         string    `gorm:"size:30;not null;index" json:"role"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
