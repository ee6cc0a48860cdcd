package models

import (
	"slices"
	"time"
)

// DaysOpen guarda os dias da semana abertos (0=domingo ... 6=sábado)
type DaysOpen []int

func (d DaysOpen) Contains(weekday int) bool {
	return slices.Contains(d, weekday)
}

type ShopSettings struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"uniqueIndex;not null" json:"tenant_id"`

	OpeningTime        string   `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime        string   `gorm:"size:5;not null" json:"closing_time"`
	DaysOpen           DaysOpen `gorm:"serializer:json" json:"days_open"`
	SlotDuration       int      `gorm:"not null" json:"slot_duration"`
	CancellationPolicy string   `gorm:"type:text" json:"cancellation_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings devolve a configuração usada enquanto o tenant
// ainda não salvou a sua (seg–sáb, 09:00–19:00, slots de 30 min)
func DefaultSettings(tenantID uint) ShopSettings {
	return ShopSettings{
		TenantID:     tenantID,
		OpeningTime:  "09:00",
		ClosingTime:  "19:00",
		DaysOpen:     DaysOpen{1, 2, 3, 4, 5, 6},
		SlotDuration: 30,
	}
}
