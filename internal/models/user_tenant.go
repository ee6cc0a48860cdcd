package models

import "time"

// Vínculo entre um usuário autenticado e uma barbearia (tenant)
type UserTenant struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"size:36;index;not null" json:"user_id"`
	TenantID uint   `gorm:"index;not null" json:"tenant_id"`
	Role     string `gorm:"size:20;default:'owner'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
