package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/timezone"
)

func TestGetAvailableSlots_EmptyWhenNoSchedule(t *testing.T) {
	repo := newFakeRepo()
	repo.sources = domain.ScheduleSources{}
	uc := NewGetAvailableSlots(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         startAt(0, 0),
	})

	require.NoError(t, err)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailableSlots_MarksBookedSlots(t *testing.T) {
	repo := newFakeRepo()

	// agendamento no fuso da casa para cair na grade do dia
	loc := timezone.Location(repo.shop.Timezone)
	booked9h := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	seedAppointment(t, repo, booked9h)

	uc := NewGetAvailableSlots(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
		DurationMin:  30,
	})

	require.NoError(t, err)
	require.NotEmpty(t, slots)

	booked := 0
	for _, s := range slots {
		if !s.Available {
			booked++
		}
	}
	assert.Greater(t, booked, 0)

	// grade inteira emitida, inclusive os indisponíveis
	assert.Greater(t, len(slots), booked)
}

func TestGetAvailableSlots_UnknownShop(t *testing.T) {
	uc := NewGetAvailableSlots(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 42,
		BarberID:     2,
		Date:         startAt(12, 0),
	})

	assert.Error(t, err)
}
