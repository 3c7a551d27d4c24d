package models

import "time"

// Horário semanal padrão da barbearia (fallback de menor precedência).
type GlobalSchedule struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_shop_weekday" json:"barbershop_id"`

	Weekday int `gorm:"uniqueIndex:idx_shop_weekday" json:"weekday"`

	IsOpen     bool   `json:"is_open"`
	OpenTime   string `gorm:"size:5" json:"open_time"`
	CloseTime  string `gorm:"size:5" json:"close_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
