package appointment

import (
	"time"

	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

const (
	// Passo fixo da grade de horários, independente da duração do serviço.
	SlotStepMinutes = 15

	DefaultSlotDurationMin = 30
)

// AvailableSlot é um candidato da grade do dia. Valor derivado,
// nunca persistido.
type AvailableSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
}

// GenerateSlots monta a grade completa do dia: um slot a cada 15
// minutos dentro do expediente, cada um com a duração do serviço e
// marcado como disponível ou não. Slots indisponíveis também são
// emitidos; quem exibe decide o que mostrar.
func GenerateSlots(
	spec *WorkingHoursSpec,
	day time.Time,
	durationMin int,
	existing []models.Appointment,
) []AvailableSlot {

	slots := []AvailableSlot{}
	if spec == nil {
		return slots
	}

	if durationMin <= 0 {
		durationMin = DefaultSlotDurationMin
	}

	duration := time.Duration(durationMin) * time.Minute
	step := SlotStepMinutes * time.Minute

	dayStart := AtTime(day, spec.Start)
	dayEnd := AtTime(day, spec.End)

	hasBreak := spec.HasBreak()
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = AtTime(day, spec.BreakStart)
		breakEnd = AtTime(day, spec.BreakEnd)
	}

	for cur := dayStart; ; cur = cur.Add(step) {
		slotEnd := cur.Add(duration)

		// nunca emitir slot truncado além do fechamento
		if slotEnd.After(dayEnd) {
			break
		}

		available := true

		if hasBreak && !cur.Before(breakStart) && slotEnd.Before(breakEnd) {
			available = false
		}

		if available && FindConflict(cur, slotEnd, existing, 0) != nil {
			available = false
		}

		slots = append(slots, AvailableSlot{
			StartTime: cur,
			EndTime:   slotEnd,
			Available: available,
		})
	}

	return slots
}
