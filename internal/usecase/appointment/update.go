package appointment

import (
	"context"
	"time"

	"github.com/diegodonald/saas-barber-sub001/internal/audit"
	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
	"github.com/diegodonald/saas-barber-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil não são alterados.
type UpdateAppointmentInput struct {
	StartTime *time.Time
	Status    *domain.Status
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, ap.BarbershopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Reagendamento: fim recalculado pela duração ORIGINAL
	// (congelada na criação), conflito excluindo o próprio id,
	// expediente revalidado para a nova data
	// --------------------------------------------------
	if in.StartTime != nil && !in.StartTime.Equal(ap.StartTime) {
		duration := ap.EndTime.Sub(ap.StartTime)
		start := *in.StartTime
		end := start.Add(duration)

		release, err := uc.locker.AcquireBarber(ctx, ap.BarberID)
		if err != nil {
			return nil, err
		}
		defer release()

		dayStart, dayEnd := dayBounds(start)
		existing, err := uc.repo.ListDayAppointments(ctx, ap.BarberID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		if c := domain.FindConflict(start, end, existing, ap.ID); c != nil {
			return nil, httperr.ConflictError{
				Start:       c.StartTime,
				End:         c.EndTime,
				ServiceName: c.Service.Name,
			}
		}

		if err := validateHours(
			ctx, uc.repo, ap.BarberID, ap.BarbershopID, start, end,
		); err != nil {
			return nil, err
		}

		ap.StartTime = start
		ap.EndTime = end
	}

	// --------------------------------------------------
	// Mudança de status: só pela tabela de transições
	// --------------------------------------------------
	if in.Status != nil && domain.Status(ap.Status) != *in.Status {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrValidation(
				"invalid_status",
				"Status desconhecido.",
			)
		}

		now := timezone.NowIn(shop.Timezone)

		switch *in.Status {
		case domain.StatusConfirmed:
			err = domain.Confirm(ap)
		case domain.StatusInProgress:
			err = domain.Start(ap)
		case domain.StatusCompleted:
			err = domain.Complete(ap, now)
		case domain.StatusCancelled:
			err = domain.Cancel(ap, now)
		case domain.StatusNoShow:
			err = domain.MarkNoShow(ap)
		default:
			err = httperr.ErrBusiness("invalid_state")
		}
		if err != nil {
			return nil, err
		}
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &ap.BarberID,
		Action:       "appointment_updated",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
