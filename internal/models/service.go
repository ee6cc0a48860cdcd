package models

import "time"

type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Duration    int     `gorm:"not null" json:"duration"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"size:255" json:"description"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
