package models

import "time"

const (
	BarberExceptionOff          = "off"
	BarberExceptionVacation     = "vacation"
	BarberExceptionClosed       = "closed"
	BarberExceptionSpecialHours = "special_hours"
	BarberExceptionAvailable    = "available"
)

// Exceção do barbeiro para uma data específica; maior precedência de todas.
type BarberException struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_date" json:"barber_id"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_barber_date" json:"date"`

	Type      string `gorm:"size:20;not null" json:"type"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotWorking indica se a exceção marca o barbeiro como indisponível no dia.
func (e *BarberException) NotWorking() bool {
	switch e.Type {
	case BarberExceptionOff, BarberExceptionVacation, BarberExceptionClosed:
		return true
	}
	return false
}
