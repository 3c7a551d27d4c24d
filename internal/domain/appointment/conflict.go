package appointment

import (
	"time"

	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// Overlaps testa sobreposição de intervalos meio-abertos [s1,e1) e
// [s2,e2). Encostar na borda (fim de um == início do outro) não conflita.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// FindConflict devolve o primeiro agendamento não cancelado que
// sobrepõe [start,end), ignorando excludeID (usado no reagendamento).
func FindConflict(
	start time.Time,
	end time.Time,
	existing []models.Appointment,
	excludeID uint,
) *models.Appointment {

	for i := range existing {
		ap := &existing[i]

		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return ap
		}
	}

	return nil
}
