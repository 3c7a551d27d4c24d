package appointment

import (
	"context"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

type ListAppointmentsOutput struct {
	Items   []dto.AppointmentListDTO `json:"items"`
	Total   int64                    `json:"total"`
	HasMore bool                     `json:"has_more"`
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) (*ListAppointmentsOutput, error) {

	appointments, total, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		items = append(items, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			TotalPrice:  ap.TotalPrice,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
		})
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return &ListAppointmentsOutput{
		Items:   items,
		Total:   total,
		HasMore: int64(page*limit) < total,
	}, nil
}
