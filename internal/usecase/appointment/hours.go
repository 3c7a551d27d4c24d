package appointment

import (
	"context"
	"time"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
)

// resolveHours carrega as quatro fontes e aplica a cadeia de precedência.
func resolveHours(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	barbershopID uint,
	date time.Time,
) (*domain.WorkingHoursSpec, error) {

	src, err := repo.GetScheduleSources(ctx, barberID, barbershopID, date)
	if err != nil {
		return nil, err
	}

	return domain.ResolveWorkingHours(src), nil
}

// validateHours garante que [start,end) cabe no expediente resolvido
// e não invade a pausa. Comparação por hora-do-dia.
func validateHours(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	barbershopID uint,
	start time.Time,
	end time.Time,
) error {

	spec, err := resolveHours(ctx, repo, barberID, barbershopID, start)
	if err != nil {
		return err
	}

	if spec == nil {
		return httperr.ErrValidation(
			"not_working_this_day",
			"Barbeiro não atende nesse dia.",
		)
	}

	if !spec.Contains(start, end) {
		return httperr.ErrValidation(
			"outside_working_hours",
			"Fora do horário de atendimento.",
		)
	}

	if spec.IntersectsBreak(start, end) {
		return httperr.ErrValidation(
			"conflicts_with_break",
			"Horário conflita com a pausa do barbeiro.",
		)
	}

	return nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
