package httperr

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	nf := fmt.Errorf("loading: %w", ErrNotFound("barber"))
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))

	ve := fmt.Errorf("checking: %w", ErrValidation("too_soon", "Horário inválido."))
	assert.True(t, IsValidation(ve))
	assert.False(t, IsConflict(ve))

	ce := fmt.Errorf("booking: %w", ConflictError{
		Start: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	})
	assert.True(t, IsConflict(ce))
	assert.False(t, IsNotFound(ce))
}

func TestBusinessErrorCode(t *testing.T) {
	err := ErrBusinessMsg("invalid_state", "scheduled para completed")

	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "other_code"))
	assert.Contains(t, err.Error(), "invalid_state")
}

func TestConflictErrorMessage(t *testing.T) {
	err := ConflictError{
		Start:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		ServiceName: "Corte",
	}

	assert.Contains(t, err.Error(), "Corte")
	assert.Contains(t, err.Error(), "09:00")
	assert.Contains(t, err.Error(), "09:30")
}
