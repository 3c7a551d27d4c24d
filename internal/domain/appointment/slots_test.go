package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots_Grid(t *testing.T) {
	spec := &WorkingHoursSpec{Start: "09:00", End: "12:00"}

	slots := GenerateSlots(spec, testDay, 30, nil)

	// 09:00 até 11:30 inclusive, passo de 15min
	require.Len(t, slots, 11)
	assert.Equal(t, AtTime(testDay, "09:00"), slots[0].StartTime)
	assert.Equal(t, AtTime(testDay, "09:30"), slots[0].EndTime)

	last := slots[len(slots)-1]
	assert.Equal(t, AtTime(testDay, "11:30"), last.StartTime)
	assert.Equal(t, AtTime(testDay, "12:00"), last.EndTime)

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_NoTruncatedSlot(t *testing.T) {
	// serviço de 45min fechando às 12:00: último início válido é 11:15
	spec := &WorkingHoursSpec{Start: "11:00", End: "12:00"}

	slots := GenerateSlots(spec, testDay, 45, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, AtTime(testDay, "11:15"), slots[1].StartTime)
	assert.Equal(t, AtTime(testDay, "12:00"), slots[1].EndTime)
}

func TestGenerateSlots_DefaultDuration(t *testing.T) {
	spec := &WorkingHoursSpec{Start: "09:00", End: "10:00"}

	slots := GenerateSlots(spec, testDay, 0, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, 30*time.Minute, slots[0].EndTime.Sub(slots[0].StartTime))
}

func TestGenerateSlots_OccupiedMarkedUnavailable(t *testing.T) {
	spec := &WorkingHoursSpec{Start: "09:00", End: "11:00"}
	existing := []models.Appointment{
		{ID: 1, StartTime: AtTime(testDay, "09:30"), EndTime: AtTime(testDay, "10:00"), Status: "scheduled"},
	}

	slots := GenerateSlots(spec, testDay, 30, existing)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.StartTime.Format("15:04")] = s.Available
	}

	assert.True(t, byStart["09:00"])  // termina 09:30, encosta sem conflitar
	assert.False(t, byStart["09:15"]) // invade 09:30–10:00
	assert.False(t, byStart["09:30"])
	assert.False(t, byStart["09:45"])
	assert.True(t, byStart["10:00"]) // começa na borda do fim
}

func TestGenerateSlots_CancelledDoesNotBlock(t *testing.T) {
	spec := &WorkingHoursSpec{Start: "09:00", End: "10:00"}
	existing := []models.Appointment{
		{ID: 1, StartTime: AtTime(testDay, "09:00"), EndTime: AtTime(testDay, "09:30"), Status: "cancelled"},
	}

	slots := GenerateSlots(spec, testDay, 30, existing)

	require.NotEmpty(t, slots)
	assert.True(t, slots[0].Available)
}

func TestGenerateSlots_BreakBlocksContainedSlots(t *testing.T) {
	spec := &WorkingHoursSpec{
		Start: "09:00", End: "15:00",
		BreakStart: "12:00", BreakEnd: "13:00",
	}

	slots := GenerateSlots(spec, testDay, 30, nil)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.StartTime.Format("15:04")] = s.Available
	}

	assert.False(t, byStart["12:00"]) // 12:00–12:30 dentro da pausa
	assert.False(t, byStart["12:15"])
	assert.True(t, byStart["13:00"])
}

func TestGenerateSlots_NilSpec(t *testing.T) {
	slots := GenerateSlots(nil, testDay, 30, nil)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestWorkingHoursSpec_Contains(t *testing.T) {
	spec := &WorkingHoursSpec{Start: "08:00", End: "19:00"}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside", "08:30", "09:00", true},
		{"exact_bounds", "08:00", "19:00", true},
		{"before_open", "07:00", "07:30", false},
		{"crosses_open", "07:45", "08:15", false},
		{"crosses_close", "18:45", "19:15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := AtTime(testDay, tt.start)
			end := AtTime(testDay, tt.end)
			assert.Equal(t, tt.want, spec.Contains(start, end))
		})
	}
}

func TestWorkingHoursSpec_IntersectsBreak(t *testing.T) {
	spec := &WorkingHoursSpec{
		Start: "08:00", End: "19:00",
		BreakStart: "12:00", BreakEnd: "13:00",
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside_break", "12:15", "12:45", true},
		{"crosses_start", "11:45", "12:15", true},
		{"crosses_end", "12:45", "13:15", true},
		{"touching_start", "11:30", "12:00", false},
		{"touching_end", "13:00", "13:30", false},
		{"far_away", "09:00", "09:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := AtTime(testDay, tt.start)
			end := AtTime(testDay, tt.end)
			assert.Equal(t, tt.want, spec.IntersectsBreak(start, end))
		})
	}

	noBreak := &WorkingHoursSpec{Start: "08:00", End: "19:00"}
	assert.False(t, noBreak.IntersectsBreak(AtTime(testDay, "12:00"), AtTime(testDay, "13:00")))
}
