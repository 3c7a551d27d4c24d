package appointment

import (
	"context"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// Operações nomeadas de ciclo de vida: wrappers finos sobre o update.

func (uc *UpdateAppointment) Cancel(
	ctx context.Context,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	status := domain.StatusCancelled
	in := UpdateAppointmentInput{Status: &status}
	if reason != "" {
		in.Notes = &reason
	}
	return uc.Execute(ctx, appointmentID, in)
}

func (uc *UpdateAppointment) Confirm(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	status := domain.StatusConfirmed
	return uc.Execute(ctx, appointmentID, UpdateAppointmentInput{Status: &status})
}

func (uc *UpdateAppointment) StartService(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	status := domain.StatusInProgress
	return uc.Execute(ctx, appointmentID, UpdateAppointmentInput{Status: &status})
}

func (uc *UpdateAppointment) Complete(
	ctx context.Context,
	appointmentID uint,
	notes string,
) (*models.Appointment, error) {

	status := domain.StatusCompleted
	in := UpdateAppointmentInput{Status: &status}
	if notes != "" {
		in.Notes = &notes
	}
	return uc.Execute(ctx, appointmentID, in)
}

func (uc *UpdateAppointment) MarkNoShow(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	status := domain.StatusNoShow
	return uc.Execute(ctx, appointmentID, UpdateAppointmentInput{Status: &status})
}
