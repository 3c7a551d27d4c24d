package repository

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barbershop")
		}
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND barbershop_id = ? AND role = ?",
			barberID, barbershopID, models.RoleBarber,
		).
		First(&barber).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service")
		}
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarberService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.BarberService, error) {

	var bs models.BarberService
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND service_id = ?", barberID, serviceID).
		First(&bs).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_service")
		}
		return nil, err
	}
	return &bs, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.User, error) {

	var client models.User
	err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND phone = ? AND role = ?",
			barbershopID, phone, models.RoleClient,
		).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.User{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Role:         models.RoleClient,
		Active:       true,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Conflito (checagem com lock dentro da transação)
// --------------------------------------------------

func assertNoTimeConflict(
	tx *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			barberID, string(domain.StatusCancelled), end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts []models.Appointment
	if err := q.Order("start_time ASC").Limit(1).Find(&conflicts).Error; err != nil {
		return err
	}

	if len(conflicts) == 0 {
		return nil
	}

	// contrato de reporte: janela e nome do serviço do conflitante
	var serviceName string
	tx.Model(&models.Service{}).
		Select("name").
		Where("id = ?", conflicts[0].ServiceID).
		Scan(&serviceName)

	return httperr.ConflictError{
		Start:       conflicts[0].StartTime,
		End:         conflicts[0].EndTime,
		ServiceName: serviceName,
	}
}

// conflictDetails reconstrói o erro de conflito após uma violação da
// constraint de exclusão (a transação original já foi abortada).
func (r *AppointmentGormRepository) conflictDetails(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {
	return assertNoTimeConflict(r.db.WithContext(ctx), barberID, start, end, excludeID)
}

// --------------------------------------------------
// Appointment (create / update)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoTimeConflict(
			tx, ap.BarberID, ap.StartTime, ap.EndTime, 0,
		); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		if cerr := r.conflictDetails(
			ctx, ap.BarberID, ap.StartTime, ap.EndTime, 0,
		); cerr != nil {
			return cerr
		}
	}

	return err
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Status(ap.Status) != domain.StatusCancelled {
			if err := assertNoTimeConflict(
				tx, ap.BarberID, ap.StartTime, ap.EndTime, ap.ID,
			); err != nil {
				return err
			}
		}
		return tx.Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		if cerr := r.conflictDetails(
			ctx, ap.BarberID, ap.StartTime, ap.EndTime, ap.ID,
		); cerr != nil {
			return cerr
		}
	}

	return err
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment")
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Schedule sources (4 consultas em paralelo)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleSources(
	ctx context.Context,
	barberID uint,
	barbershopID uint,
	date time.Time,
) (domain.ScheduleSources, error) {

	weekday := int(date.Weekday())
	day := date.Format("2006-01-02")

	var src domain.ScheduleSources
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var ex models.BarberException
		err := r.db.WithContext(gctx).
			Where("barber_id = ? AND date = ?", barberID, day).
			First(&ex).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err == nil {
			src.BarberException = &ex
		}
		return err
	})

	g.Go(func() error {
		var sch models.BarberSchedule
		err := r.db.WithContext(gctx).
			Where("barber_id = ? AND weekday = ?", barberID, weekday).
			First(&sch).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err == nil {
			src.BarberSchedule = &sch
		}
		return err
	})

	g.Go(func() error {
		var ex models.GlobalException
		err := r.db.WithContext(gctx).
			Where("barbershop_id = ? AND date = ?", barbershopID, day).
			First(&ex).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err == nil {
			src.GlobalException = &ex
		}
		return err
	})

	g.Go(func() error {
		var sch models.GlobalSchedule
		err := r.db.WithContext(gctx).
			Where("barbershop_id = ? AND weekday = ?", barbershopID, weekday).
			First(&sch).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err == nil {
			src.GlobalSchedule = &sch
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.ScheduleSources{}, err
	}

	return src, nil
}

// --------------------------------------------------
// Listagem / disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) ListDayAppointments(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			barberID, string(domain.StatusCancelled), end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.BarbershopID != nil {
		q = q.Where("barbershop_id = ?", *filter.BarbershopID)
	}
	if filter.BarberID != nil {
		q = q.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		q = q.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_time < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "start_time"
	switch filter.SortBy {
	case "created_at", "total_price", "start_time":
		sortBy = filter.SortBy
	}
	order := sortBy + " ASC"
	if filter.SortDesc {
		order = sortBy + " DESC"
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var apps []models.Appointment
	if err := q.
		Preload("Client").
		Preload("Service").
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// --------------------------------------------------
// Estatísticas
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStats(
	ctx context.Context,
	filter domain.StatsFilter,
) (*domain.Stats, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.BarbershopID != nil {
		q = q.Where("barbershop_id = ?", *filter.BarbershopID)
	}
	if filter.BarberID != nil {
		q = q.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.From != nil {
		q = q.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_time < ?", *filter.To)
	}

	var rows []struct {
		Status  string
		Count   int64
		Revenue float64
	}

	if err := q.
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &domain.Stats{}
	for _, row := range rows {
		stats.Total += row.Count

		switch domain.Status(row.Status) {
		case domain.StatusScheduled:
			stats.Scheduled = row.Count
		case domain.StatusConfirmed:
			stats.Confirmed = row.Count
		case domain.StatusInProgress:
			stats.InProgress = row.Count
		case domain.StatusCompleted:
			stats.Completed = row.Count
			stats.TotalRevenue = row.Revenue
			if row.Count > 0 {
				stats.AveragePrice = row.Revenue / float64(row.Count)
			}
		case domain.StatusCancelled:
			stats.Cancelled = row.Count
		case domain.StatusNoShow:
			stats.NoShow = row.Count
		}
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
