package appointment

import (
	"context"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/timezone"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute monta a grade do dia para um barbeiro. Barbeiro sem expediente
// na data não é erro: devolve grade vazia.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.AvailableSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	day := in.Date.In(loc)
	dayStart, dayEnd := dayBounds(day)

	spec, err := resolveHours(ctx, uc.repo, in.BarberID, in.BarbershopID, day)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return []domain.AvailableSlot{}, nil
	}

	existing, err := uc.repo.ListDayAppointments(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return domain.GenerateSlots(spec, day, in.DurationMin, existing), nil
}
