package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegodonald/saas-barber-sub001/internal/audit"
	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/infra/lock"
)

func newUpdateUC(repo *fakeRepo) *UpdateAppointment {
	return NewUpdateAppointment(repo, lock.NopLocker{}, audit.NewDispatcher(audit.New(nil)))
}

func seedAppointment(t *testing.T, repo *fakeRepo, start time.Time) uint {
	t.Helper()

	ap, err := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1,
		BarberID:     2,
		ClientID:     9,
		ServiceID:    3,
		StartTime:    start,
	})
	require.NoError(t, err)
	return ap.ID
}

func TestUpdateAppointment_Reschedule(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	newStart := startAt(10, 0)
	ap, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		StartTime: &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, newStart, ap.StartTime)
	// duração original preservada
	assert.Equal(t, startAt(10, 30), ap.EndTime)
}

func TestUpdateAppointment_RescheduleIgnoresOwnSlot(t *testing.T) {
	// mover 15 minutos para frente sobrepõe o horário atual do próprio
	// agendamento; isso não pode contar como conflito
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	newStart := startAt(8, 45)
	ap, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		StartTime: &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, startAt(9, 15), ap.EndTime)
}

func TestUpdateAppointment_RescheduleConflict(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	seedAppointment(t, repo, startAt(10, 0))
	uc := newUpdateUC(repo)

	newStart := startAt(10, 15)
	_, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		StartTime: &newStart,
	})

	var ce httperr.ConflictError
	require.True(t, errors.As(err, &ce))

	// estado original intacto
	stored, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, startAt(8, 30), stored.StartTime)
}

func TestUpdateAppointment_RescheduleOutsideHours(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	newStart := startAt(20, 0)
	_, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		StartTime: &newStart,
	})

	require.Error(t, err)
	assert.Equal(t, "outside_working_hours", validationCode(t, err))
}

func TestUpdateAppointment_StatusFlow(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	ctx := context.Background()

	ap, err := uc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)

	ap, err = uc.StartService(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), ap.Status)

	ap, err = uc.Complete(ctx, id, "cliente satisfeito")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
	assert.Equal(t, "cliente satisfeito", ap.Notes)
}

func TestUpdateAppointment_CancelCompleted(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	ctx := context.Background()
	_, err := uc.StartService(ctx, id)
	require.NoError(t, err)
	_, err = uc.Complete(ctx, id, "")
	require.NoError(t, err)

	_, err = uc.Cancel(ctx, id, "desisti")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateAppointment_Cancel(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	ap, err := uc.Cancel(context.Background(), id, "cliente pediu")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Equal(t, "cliente pediu", ap.Notes)
}

func TestUpdateAppointment_NoShowAfterStartFails(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	ctx := context.Background()
	_, err := uc.StartService(ctx, id)
	require.NoError(t, err)

	_, err = uc.MarkNoShow(ctx, id)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateAppointment_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	bogus := domain.Status("teleported")
	_, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		Status: &bogus,
	})

	require.Error(t, err)
	assert.Equal(t, "invalid_status", validationCode(t, err))
}

func TestUpdateAppointment_NotesOnly(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(8, 30))
	uc := newUpdateUC(repo)

	notes := "prefere máquina 2"
	ap, err := uc.Execute(context.Background(), id, UpdateAppointmentInput{
		Notes: &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, notes, ap.Notes)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	uc := newUpdateUC(newFakeRepo())

	_, err := uc.Confirm(context.Background(), 9999)
	assert.True(t, httperr.IsNotFound(err))
}
