package appointment

import (
	"context"
	"time"

	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// ListFilter restringe a listagem de agendamentos. Ponteiros nil
// significam "sem filtro".
type ListFilter struct {
	BarbershopID *uint
	BarberID     *uint
	ClientID     *uint
	ServiceID    *uint
	Status       *Status

	From *time.Time
	To   *time.Time

	Page  int
	Limit int

	SortBy   string // start_time | created_at | total_price
	SortDesc bool
}

// StatsFilter restringe a agregação de estatísticas.
type StatsFilter struct {
	BarbershopID *uint
	BarberID     *uint
	ClientID     *uint
	ServiceID    *uint

	From *time.Time
	To   *time.Time
}

// Stats agrega contagens por status; receita e ticket médio consideram
// apenas agendamentos concluídos.
type Stats struct {
	Total      int64   `json:"total"`
	Scheduled  int64   `json:"scheduled"`
	Confirmed  int64   `json:"confirmed"`
	InProgress int64   `json:"in_progress"`
	Completed  int64   `json:"completed"`
	Cancelled  int64   `json:"cancelled"`
	NoShow     int64   `json:"no_show"`

	TotalRevenue float64 `json:"total_revenue"`
	AveragePrice float64 `json:"average_price"`
}

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetBarberService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.BarberService, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.User, error)

	// -------- Appointment (create / update, com guarda transacional) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	// -------- Schedule sources --------
	GetScheduleSources(
		ctx context.Context,
		barberID uint,
		barbershopID uint,
		date time.Time,
	) (ScheduleSources, error)

	// -------- Listagem / disponibilidade --------
	ListDayAppointments(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	// -------- Estatísticas --------
	GetStats(
		ctx context.Context,
		filter StatsFilter,
	) (*Stats, error)
}

// Locker serializa a janela checagem-de-conflito → gravação por
// barbeiro, fechando a corrida clássica de check-then-act.
type Locker interface {
	AcquireBarber(ctx context.Context, barberID uint) (release func(), err error)
}
