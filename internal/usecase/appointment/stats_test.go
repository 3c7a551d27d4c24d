package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

func TestGetStats_Aggregation(t *testing.T) {
	repo := newFakeRepo()

	seed := []struct {
		status string
		price  float64
	}{
		{"completed", 50},
		{"completed", 30},
		{"scheduled", 50},
		{"cancelled", 50},
		{"no_show", 25},
	}
	for i, s := range seed {
		repo.appointments = append(repo.appointments, &models.Appointment{
			ID:           uint(i + 1),
			BarbershopID: 1,
			BarberID:     2,
			StartTime:    startAt(9+i, 0),
			EndTime:      startAt(9+i, 30),
			Status:       s.status,
			TotalPrice:   s.price,
		})
	}

	uc := NewGetStats(repo)
	barberID := uint(2)

	stats, err := uc.Execute(context.Background(), domain.StatsFilter{
		BarberID: &barberID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.Completed)
	assert.Equal(t, int64(1), stats.Scheduled)
	assert.Equal(t, int64(1), stats.Cancelled)
	assert.Equal(t, int64(1), stats.NoShow)

	// receita e ticket médio só contam concluídos
	assert.Equal(t, 80.0, stats.TotalRevenue)
	assert.Equal(t, 40.0, stats.AveragePrice)
}

func TestListAppointments_Pagination(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 3; i++ {
		seedAppointment(t, repo, startAt(9+i, 0))
	}

	uc := NewListAppointments(repo)
	barberID := uint(2)

	out, err := uc.Execute(context.Background(), domain.ListFilter{
		BarberID: &barberID,
		Page:     1,
		Limit:    2,
	})

	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(3), out.Total)
	assert.True(t, out.HasMore)

	out, err = uc.Execute(context.Background(), domain.ListFilter{
		BarberID: &barberID,
		Page:     2,
		Limit:    2,
	})

	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.False(t, out.HasMore)
}

func TestListAppointments_StatusFilter(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, startAt(9, 0))
	seedAppointment(t, repo, startAt(10, 0))

	_, err := newUpdateUC(repo).Cancel(context.Background(), id, "")
	require.NoError(t, err)

	uc := NewListAppointments(repo)
	status := domain.StatusCancelled

	out, err := uc.Execute(context.Background(), domain.ListFilter{
		Status: &status,
	})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "cancelled", out.Items[0].Status)
}
