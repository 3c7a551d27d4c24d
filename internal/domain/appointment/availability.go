package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	Date         time.Time

	// Duração do slot em minutos; 0 usa o padrão de 30.
	DurationMin int
}
