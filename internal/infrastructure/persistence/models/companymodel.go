package models

import "time"

type CompanyModel struct {
	ID             uint      `gorm:"primaryKey" json:"id,omitempty"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	CommercialName *string   `gorm:"size:200" json:"commercial_name"`
	BusinessName   *string   `gorm:"size:200" json:"business_name"`
	CountryCode    *string   `gorm:"size:10" json:"country_code"`
	CountryNumber  *string   `gorm:"size:10" json:"country_number"`
	PhoneNumber    *string   `gorm:"size:30" json:"phone_number"`
	City           *string   `gorm:"size:100" json:"city"`
	StateProvince  *string   `gorm:"size:100" json:"state_province"`
	AddressPrimary *string   `gorm:"size:255" json:"address_primary"`
	Website        *string   `gorm:"size:255" json:"website"`
	ImageURL       *string   `gorm:"size:500" json:"image_url"`
	Active         bool      `gorm:"not null;default:false" json:"active"`
	OwnerID        uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

type CompanyUserModel struct {
	ID           uint      `gorm:"primaryKey" json:"id,omitempty"`
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"password_hash"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	Role         string    `gorm:"size:30;not null" json:"role"`
	Active       bool      `gorm:"not null;default:false" json:"active"`
	SelfieURL    *string   `gorm:"size:500" json:"selfie_url"`
	PhoneNumber  *string   `gorm:"size:30" json:"phone_number"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (CompanyUserModel) TableName() string {
	return "company_users"
}
