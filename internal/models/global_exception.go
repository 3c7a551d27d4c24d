package models

import "time"

const (
	GlobalExceptionClosed       = "closed"
	GlobalExceptionSpecialHours = "special_hours"
)

// Exceção da barbearia para uma data específica (feriado, horário especial).
type GlobalException struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_shop_date" json:"barbershop_id"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_shop_date" json:"date"`

	Type      string `gorm:"size:20;not null" json:"type"`
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
