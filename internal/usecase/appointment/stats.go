package appointment

import (
	"context"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Agregação pura: contagens por status, receita e ticket médio só
// sobre agendamentos concluídos.
func (uc *GetStats) Execute(
	ctx context.Context,
	filter domain.StatsFilter,
) (*domain.Stats, error) {
	return uc.repo.GetStats(ctx, filter)
}
