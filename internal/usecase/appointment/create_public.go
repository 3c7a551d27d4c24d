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

type CreatePublicAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// Fluxo da página pública de agendamento: resolve o cliente pelo
// telefone e aplica a antecedência mínima da barbearia antes de
// delegar ao fluxo central de criação.
type CreatePublicAppointment struct {
	repo   domain.Repository
	create *CreateAppointment
	audit  *audit.Dispatcher
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	create *CreateAppointment,
	audit *audit.Dispatcher,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:   repo,
		create: create,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// data/hora no timezone da barbearia
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation(
			"invalid_date_or_time",
			"Data ou hora inválida.",
		)
	}

	// antecedência mínima
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrValidation("too_soon", "Horário inválido.")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap, err := uc.create.Execute(ctx, CreateAppointmentInput{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		ServiceID:    in.ServiceID,
		StartTime:    start,
		Notes:        in.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       nil, // origem pública, sem usuário autenticado
		Action:       "appointment.public_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata: map[string]any{
			"client_id": client.ID,
			"barber_id": in.BarberID,
		},
	})

	return ap, nil
}
