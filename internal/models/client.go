package models

import "time"

// Cliente da barbearia, sem login próprio
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Whatsapp string `gorm:"size:20" json:"whatsapp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
