package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		s1   time.Time
		e1   time.Time
		s2   time.Time
		e2   time.Time
		want bool
	}{
		{"identical", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"partial_start", at(8, 45), at(9, 15), at(9, 0), at(9, 30), true},
		{"partial_end", at(9, 15), at(9, 45), at(9, 0), at(9, 30), true},
		{"contained", at(9, 10), at(9, 20), at(9, 0), at(9, 30), true},
		{"containing", at(8, 30), at(10, 0), at(9, 0), at(9, 30), true},
		{"touching_end", at(8, 30), at(9, 0), at(9, 0), at(9, 30), false},
		{"touching_start", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"disjoint", at(7, 0), at(7, 30), at(9, 0), at(9, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// simétrico
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, StartTime: at(9, 0), EndTime: at(9, 30), Status: "scheduled"},
		{ID: 2, StartTime: at(10, 0), EndTime: at(10, 30), Status: "cancelled"},
		{ID: 3, StartTime: at(11, 0), EndTime: at(11, 30), Status: "confirmed"},
	}

	t.Run("hit", func(t *testing.T) {
		c := FindConflict(at(9, 15), at(9, 45), existing, 0)
		require.NotNil(t, c)
		assert.Equal(t, uint(1), c.ID)
	})

	t.Run("cancelled_ignored", func(t *testing.T) {
		assert.Nil(t, FindConflict(at(10, 0), at(10, 30), existing, 0))
	})

	t.Run("exclude_own_id", func(t *testing.T) {
		assert.Nil(t, FindConflict(at(9, 0), at(9, 30), existing, 1))
	})

	t.Run("boundary_touch_ok", func(t *testing.T) {
		assert.Nil(t, FindConflict(at(9, 30), at(10, 0), existing, 0))
	})

	t.Run("confirmed_blocks", func(t *testing.T) {
		c := FindConflict(at(11, 15), at(11, 45), existing, 0)
		require.NotNil(t, c)
		assert.Equal(t, uint(3), c.ID)
	})
}
