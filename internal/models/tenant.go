package models

import "time"

type Tenant struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	OwnerName      string `gorm:"size:100;not null" json:"owner_name"`
	Email          string `gorm:"size:100;not null" json:"email"`
	WhatsappNumber string `gorm:"size:20" json:"whatsapp_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
