package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegodonald/saas-barber-sub001/internal/audit"
	"github.com/diegodonald/saas-barber-sub001/internal/infra/lock"
	"github.com/diegodonald/saas-barber-sub001/internal/timezone"
)

func newPublicUC(repo *fakeRepo) *CreatePublicAppointment {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	create := NewCreateAppointment(repo, lock.NopLocker{}, dispatcher)
	return NewCreatePublicAppointment(repo, create, dispatcher)
}

func TestCreatePublicAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newPublicUC(repo)

	day := timezone.NowIn(repo.shop.Timezone).Add(48 * time.Hour)

	ap, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		BarbershopID: 1,
		BarberID:     2,
		ClientName:   "Maria",
		ClientPhone:  "11999990000",
		ServiceID:    3,
		Date:         day.Format("2006-01-02"),
		Time:         "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "scheduled", ap.Status)
	assert.NotZero(t, ap.ClientID)

	// cliente criado na base da barbearia
	require.Len(t, repo.clients, 1)
	assert.Equal(t, "Maria", repo.clients[0].Name)
}

func TestCreatePublicAppointment_DedupesClientByPhone(t *testing.T) {
	repo := newFakeRepo()
	uc := newPublicUC(repo)

	day := timezone.NowIn(repo.shop.Timezone).Add(48 * time.Hour).Format("2006-01-02")

	first, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		BarbershopID: 1, BarberID: 2, ServiceID: 3,
		ClientName: "Maria", ClientPhone: "11999990000",
		Date: day, Time: "09:00",
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		BarbershopID: 1, BarberID: 2, ServiceID: 3,
		ClientName: "Maria Silva", ClientPhone: "11999990000",
		Date: day, Time: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)
	assert.Len(t, repo.clients, 1)
}

func TestCreatePublicAppointment_TooSoon(t *testing.T) {
	repo := newFakeRepo()
	uc := newPublicUC(repo)

	soon := timezone.NowIn(repo.shop.Timezone).Add(30 * time.Minute)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		BarbershopID: 1, BarberID: 2, ServiceID: 3,
		ClientName: "Maria", ClientPhone: "11999990000",
		Date: soon.Format("2006-01-02"),
		Time: soon.Format("15:04"),
	})

	require.Error(t, err)
	assert.Equal(t, "too_soon", validationCode(t, err))
}

func TestCreatePublicAppointment_BadDate(t *testing.T) {
	uc := newPublicUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		BarbershopID: 1, BarberID: 2, ServiceID: 3,
		ClientName: "Maria", ClientPhone: "11999990000",
		Date: "10/03/2026",
		Time: "09:00",
	})

	require.Error(t, err)
	assert.Equal(t, "invalid_date_or_time", validationCode(t, err))
}
