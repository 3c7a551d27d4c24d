package appointment

import (
	"context"
	"time"

	"github.com/diegodonald/saas-barber-sub001/internal/audit"
	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint
	ClientID     uint
	ServiceID    uint

	StartTime time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbeiro (existente e ativo na barbearia)
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrNotFound("barber")
	}

	// --------------------------------------------------
	// 2. Vínculo barbeiro x serviço
	// --------------------------------------------------
	bs, err := uc.repo.GetBarberService(ctx, in.BarberID, in.ServiceID)
	if err != nil || !bs.Active {
		return nil, httperr.ErrValidation(
			"barber_not_assigned",
			"Barbeiro não executa este serviço.",
		)
	}

	// --------------------------------------------------
	// 3. Serviço (existente e ativo)
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrNotFound("service")
	}

	// --------------------------------------------------
	// 4. Horário de término (duração congelada na criação)
	// --------------------------------------------------
	start := in.StartTime
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5. Lock por barbeiro até a gravação
	// --------------------------------------------------
	release, err := uc.locker.AcquireBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 6. Conflito de horário
	// --------------------------------------------------
	dayStart, dayEnd := dayBounds(start)
	existing, err := uc.repo.ListDayAppointments(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if c := domain.FindConflict(start, end, existing, 0); c != nil {
		return nil, httperr.ConflictError{
			Start:       c.StartTime,
			End:         c.EndTime,
			ServiceName: c.Service.Name,
		}
	}

	// --------------------------------------------------
	// 7. Expediente + pausa
	// --------------------------------------------------
	if err := validateHours(
		ctx, uc.repo, in.BarberID, in.BarbershopID, start, end,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Preço efetivo (custom do barbeiro > base do serviço),
	//    congelado no agendamento
	// --------------------------------------------------
	price := service.Price
	if bs.CustomPrice != nil {
		price = *bs.CustomPrice
	}

	// --------------------------------------------------
	// 9. Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		StartTime:    start,
		EndTime:      end,
		TotalPrice:   price,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 10. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
