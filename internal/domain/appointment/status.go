package appointment

import "github.com/diegodonald/saas-barber-sub001/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Transições permitidas. O fluxo normal é
// scheduled → confirmed → in_progress → completed; cancelamento e
// no-show só valem antes do atendimento começar. Pular etapas para
// frente é permitido (ex.: iniciar sem confirmar).
var allowedTransitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

func IsValidStatus(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition valida a mudança de status contra a tabela de transições.
func CanTransition(from, to Status) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusinessMsg("invalid_state", string(from)+" para "+string(to))
}

func IsTerminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
