package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/httpresp"
	"github.com/diegodonald/saas-barber-sub001/internal/middleware"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

// Administra as quatro fontes de horário: agenda semanal da barbearia,
// agenda semanal do barbeiro e exceções de data de ambos.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type GlobalDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen     bool   `json:"is_open"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type GlobalScheduleUpdateRequest struct {
	Days []GlobalDayConfig `json:"days" binding:"required"`
}

type BarberDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsWorking  bool   `json:"is_working"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type BarberScheduleUpdateRequest struct {
	Days []BarberDayConfig `json:"days" binding:"required"`
}

type GlobalExceptionRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Type      string `json:"type" binding:"required,oneof=closed special_hours"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Reason    string `json:"reason"`
}

type BarberExceptionRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Type      string `json:"type" binding:"required,oneof=off vacation closed special_hours available"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

// ======================================================
// GLOBAL SCHEDULE (barbearia)
// ======================================================

func (h *ScheduleHandler) GetGlobalSchedule(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var days []models.GlobalSchedule
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, days)
}

func (h *ScheduleHandler) UpdateGlobalSchedule(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req GlobalScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barbershop_id = ?", barbershopID).
			Delete(&models.GlobalSchedule{}).Error; err != nil {
			return err
		}

		var toCreate []models.GlobalSchedule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.GlobalSchedule{
				BarbershopID: barbershopID,
				Weekday:      d.Weekday,
				IsOpen:       d.IsOpen,
				OpenTime:     d.OpenTime,
				CloseTime:    d.CloseTime,
				LunchStart:   d.LunchStart,
				LunchEnd:     d.LunchEnd,
			})
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
		return
	}

	writeAudit(h.db, barbershopID, &userID,
		"schedule.global_updated", "global_schedule", nil,
		gin.H{"days": len(req.Days)},
	)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BARBER SCHEDULE
// ======================================================

func (h *ScheduleHandler) GetBarberSchedule(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var days []models.BarberSchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, days)
}

func (h *ScheduleHandler) UpdateBarberSchedule(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req BarberScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.BarberSchedule{}).Error; err != nil {
			return err
		}

		var toCreate []models.BarberSchedule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.BarberSchedule{
				BarberID:   barberID,
				Weekday:    d.Weekday,
				IsWorking:  d.IsWorking,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
				BreakStart: d.BreakStart,
				BreakEnd:   d.BreakEnd,
			})
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
		return
	}

	writeAudit(h.db, barbershopID, &barberID,
		"schedule.barber_updated", "barber_schedule", &barberID,
		gin.H{"days": len(req.Days)},
	)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// GLOBAL EXCEPTIONS
// ======================================================

func (h *ScheduleHandler) ListGlobalExceptions(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var exceptions []models.GlobalException
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("date ASC").
		Find(&exceptions).Error; err != nil {

		httperr.Internal(c, "failed_to_list_exceptions", "Erro ao listar exceções.")
		return
	}

	httpresp.List(c, exceptions)
}

func (h *ScheduleHandler) CreateGlobalException(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req GlobalExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDateInShop(&shop, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if req.Type == models.GlobalExceptionSpecialHours &&
		(req.OpenTime == "" || req.CloseTime == "") {
		httperr.BadRequest(c, "missing_hours", "Horário especial exige abertura e fechamento.")
		return
	}

	ex := models.GlobalException{
		BarbershopID: barbershopID,
		Date:         date,
		Type:         req.Type,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		Reason:       req.Reason,
	}

	if err := h.db.Create(&ex).Error; err != nil {
		httperr.Internal(c, "failed_to_create_exception", "Erro ao criar exceção.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, barbershopID, &userID,
		"schedule.global_exception_created", "global_exception", &ex.ID,
		gin.H{"date": req.Date, "type": req.Type},
	)

	httpresp.Created(c, ex)
}

func (h *ScheduleHandler) DeleteGlobalException(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.GlobalException{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Erro ao remover exceção.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BARBER EXCEPTIONS
// ======================================================

func (h *ScheduleHandler) ListBarberExceptions(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var exceptions []models.BarberException
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&exceptions).Error; err != nil {

		httperr.Internal(c, "failed_to_list_exceptions", "Erro ao listar exceções.")
		return
	}

	httpresp.List(c, exceptions)
}

func (h *ScheduleHandler) CreateBarberException(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req BarberExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDateInShop(&shop, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	needsHours := req.Type == models.BarberExceptionSpecialHours ||
		req.Type == models.BarberExceptionAvailable
	if needsHours && (req.StartTime == "" || req.EndTime == "") {
		httperr.BadRequest(c, "missing_hours", "Horário especial exige início e fim.")
		return
	}

	ex := models.BarberException{
		BarberID:  barberID,
		Date:      date,
		Type:      req.Type,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&ex).Error; err != nil {
		httperr.Internal(c, "failed_to_create_exception", "Erro ao criar exceção.")
		return
	}

	writeAudit(h.db, barbershopID, &barberID,
		"schedule.barber_exception_created", "barber_exception", &ex.ID,
		gin.H{"date": req.Date, "type": req.Type},
	)

	httpresp.Created(c, ex)
}

func (h *ScheduleHandler) DeleteBarberException(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		Delete(&models.BarberException{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Erro ao remover exceção.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
