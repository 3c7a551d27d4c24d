package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes de
// use case. As fontes de horário são fixas por instância: os cenários
// montam o expediente que precisam e variam apenas os agendamentos.
type fakeRepo struct {
	shop        *models.Barbershop
	barbers     map[uint]*models.User
	services    map[uint]*models.Service
	assignments map[[2]uint]*models.BarberService

	clients      []*models.User
	appointments []*models.Appointment

	sources domain.ScheduleSources

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: &models.Barbershop{
			ID:                1,
			Name:              "Barbearia Teste",
			Slug:              "barbearia-teste",
			Timezone:          "America/Sao_Paulo",
			MinAdvanceMinutes: 120,
		},
		barbers: map[uint]*models.User{
			2: {ID: 2, BarbershopID: 1, Name: "João", Role: models.RoleBarber, Active: true},
		},
		services: map[uint]*models.Service{
			3: {ID: 3, BarbershopID: 1, Name: "Corte", DurationMin: 30, Price: 50, Active: true},
		},
		assignments: map[[2]uint]*models.BarberService{
			{2, 3}: {ID: 1, BarberID: 2, ServiceID: 3, Active: true},
		},
		sources: domain.ScheduleSources{
			GlobalSchedule: &models.GlobalSchedule{
				IsOpen:     true,
				OpenTime:   "08:00",
				CloseTime:  "19:00",
				LunchStart: "12:00",
				LunchEnd:   "13:00",
			},
		},
		nextID: 100,
	}
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, httperr.ErrNotFound("barbershop")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, barbershopID, barberID uint) (*models.User, error) {
	b, ok := f.barbers[barberID]
	if !ok || b.BarbershopID != barbershopID {
		return nil, httperr.ErrNotFound("barber")
	}
	return b, nil
}

func (f *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, httperr.ErrNotFound("service")
	}
	return s, nil
}

func (f *fakeRepo) GetBarberService(_ context.Context, barberID, serviceID uint) (*models.BarberService, error) {
	bs, ok := f.assignments[[2]uint{barberID, serviceID}]
	if !ok {
		return nil, httperr.ErrNotFound("barber_service")
	}
	return bs, nil
}

func (f *fakeRepo) GetOrCreateClient(
	_ context.Context,
	barbershopID uint,
	name, phone, email string,
) (*models.User, error) {

	for _, c := range f.clients {
		if c.BarbershopID == barbershopID && c.Phone == phone {
			return c, nil
		}
	}

	f.nextID++
	c := &models.User{
		ID:           f.nextID,
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        strings.ToLower(email),
		Role:         models.RoleClient,
		Active:       true,
	}
	f.clients = append(f.clients, c)
	return c, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments = append(f.appointments, &cp)
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, cur := range f.appointments {
		if cur.ID == ap.ID {
			cp := *ap
			f.appointments[i] = &cp
			return nil
		}
	}
	return httperr.ErrNotFound("appointment")
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrNotFound("appointment")
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, id, barberID uint) (*models.Appointment, error) {
	ap, err := f.GetAppointment(context.Background(), id)
	if err != nil || ap.BarberID != barberID {
		return nil, httperr.ErrNotFound("appointment")
	}
	return ap, nil
}

func (f *fakeRepo) GetScheduleSources(
	_ context.Context,
	_ uint,
	_ uint,
	_ time.Time,
) (domain.ScheduleSources, error) {
	return f.sources, nil
}

func (f *fakeRepo) ListDayAppointments(
	_ context.Context,
	barberID uint,
	start, end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointments(
	_ context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	var matched []models.Appointment
	for _, ap := range f.appointments {
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		if filter.From != nil && ap.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.StartTime.Before(*filter.To) {
			continue
		}
		matched = append(matched, *ap)
	}

	total := int64(len(matched))

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.Appointment{}, total, nil
	}

	endIdx := offset + limit
	if endIdx > len(matched) {
		endIdx = len(matched)
	}
	return matched[offset:endIdx], total, nil
}

func (f *fakeRepo) GetStats(
	_ context.Context,
	filter domain.StatsFilter,
) (*domain.Stats, error) {

	stats := &domain.Stats{}
	for _, ap := range f.appointments {
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.From != nil && ap.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.StartTime.Before(*filter.To) {
			continue
		}

		stats.Total++
		switch domain.Status(ap.Status) {
		case domain.StatusScheduled:
			stats.Scheduled++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusCompleted:
			stats.Completed++
			stats.TotalRevenue += ap.TotalPrice
		case domain.StatusCancelled:
			stats.Cancelled++
		case domain.StatusNoShow:
			stats.NoShow++
		}
	}

	if stats.Completed > 0 {
		stats.AveragePrice = stats.TotalRevenue / float64(stats.Completed)
	}
	return stats, nil
}
