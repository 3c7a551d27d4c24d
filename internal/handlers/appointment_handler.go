package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/middleware"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
	ucAppointment "github.com/diegodonald/saas-barber-sub001/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db   *gorm.DB
	repo domain.Repository

	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	slotsUC  *ucAppointment.GetAvailableSlots
	listUC   *ucAppointment.ListAppointments
	statsUC  *ucAppointment.GetStats
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	slotsUC *ucAppointment.GetAvailableSlots,
	listUC *ucAppointment.ListAppointments,
	statsUC *ucAppointment.GetStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		slotsUC:  slotsUC,
		listUC:   listUC,
		statsUC:  statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTimeInShop(&shop, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	clientID := req.ClientID
	if clientID == 0 {
		if req.ClientName == "" || req.ClientPhone == "" {
			httperr.BadRequest(c, "missing_client", "Cliente obrigatório.")
			return
		}

		client, err := h.repo.GetOrCreateClient(
			c.Request.Context(),
			barbershopID,
			req.ClientName,
			req.ClientPhone,
			req.ClientEmail,
		)
		if err != nil {
			httperr.Internal(c, "failed_to_resolve_client", "Erro ao resolver cliente.")
			return
		}
		clientID = client.ID
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientID:     clientID,
		ServiceID:    req.ServiceID,
		StartTime:    start,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// UPDATE (reagendamento / status / notas)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var in ucAppointment.UpdateAppointmentInput

	if req.Date != nil || req.Time != nil {
		if req.Date == nil || req.Time == nil {
			httperr.BadRequest(c, "missing_date_or_time", "Data e hora devem vir juntas.")
			return
		}

		start, err := parseDateTimeInShop(&shop, *req.Date, *req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.StartTime = &start
	}

	if req.Status != nil {
		status := domain.Status(*req.Status)
		in.Status = &status
	}

	in.Notes = req.Notes

	updated, err := h.updateUC.Execute(c.Request.Context(), ap.ID, in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

// ======================================================
// TRANSITIONS
// ======================================================

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	updated, err := h.updateUC.Cancel(c.Request.Context(), ap.ID, req.Reason)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	updated, err := h.updateUC.Confirm(c.Request.Context(), ap.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	updated, err := h.updateUC.StartService(c.Request.Context(), ap.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes"`
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	updated, err := h.updateUC.Complete(c.Request.Context(), ap.ID, req.Notes)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ap, ok := h.ownAppointment(c, barberID)
	if !ok {
		return
	}

	updated, err := h.updateUC.MarkNoShow(c.Request.Context(), ap.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(200, updated)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	filter := domain.ListFilter{
		BarbershopID: &barbershopID,
		BarberID:     &barberID,
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDateInShop(&shop, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		from := date
		to := date.Add(24 * time.Hour)
		filter.From = &from
		filter.To = &to
	} else {
		if fromStr := c.Query("from"); fromStr != "" {
			if from, err := parseDateInShop(&shop, fromStr); err == nil {
				filter.From = &from
			}
		}
		if toStr := c.Query("to"); toStr != "" {
			if to, err := parseDateInShop(&shop, toStr); err == nil {
				end := to.Add(24 * time.Hour)
				filter.To = &end
			}
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.Status(statusStr)
		if !domain.IsValidStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
			return
		}
		filter.Status = &status
	}

	if clientStr := c.Query("client_id"); clientStr != "" {
		if id, err := strconv.ParseUint(clientStr, 10, 64); err == nil {
			clientID := uint(id)
			filter.ClientID = &clientID
		}
	}

	if serviceStr := c.Query("service_id"); serviceStr != "" {
		if id, err := strconv.ParseUint(serviceStr, 10, 64); err == nil {
			serviceID := uint(id)
			filter.ServiceID = &serviceID
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.SortBy = c.DefaultQuery("sort", "start_time")
	filter.SortDesc = c.Query("order") == "desc"

	out, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	durationMin := 0
	if serviceStr := c.Query("service_id"); serviceStr != "" {
		id, err := strconv.ParseUint(serviceStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}

		service, err := h.repo.GetService(c.Request.Context(), barbershopID, uint(id))
		if err != nil {
			writeDomainError(c, err)
			return
		}
		durationMin = service.DurationMin
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		Date:         date,
		DurationMin:  durationMin,
	})
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// STATS
// ======================================================

func (h *AppointmentHandler) Stats(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	filter := domain.StatsFilter{
		BarbershopID: &barbershopID,
		BarberID:     &barberID,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := parseDateInShop(&shop, fromStr); err == nil {
			filter.From = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := parseDateInShop(&shop, toStr); err == nil {
			end := to.Add(24 * time.Hour)
			filter.To = &end
		}
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(200, stats)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) ownAppointment(
	c *gin.Context,
	barberID uint,
) (*models.Appointment, bool) {

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	ap, err := h.repo.GetAppointmentForBarber(c.Request.Context(), uint(id), barberID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return nil, false
	}

	return ap, true
}
