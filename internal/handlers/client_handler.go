package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
	"github.com/diegodonald/saas-barber-sub001/internal/httpresp"
	"github.com/diegodonald/saas-barber-sub001/internal/middleware"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where(
		"barbershop_id = ? AND role = ?",
		barbershopID, models.RoleClient,
	)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.User
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CLIENT DETAIL (COM HISTÓRICO DE AGENDAMENTOS)
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var client models.User
	if err := h.db.
		Where(
			"id = ? AND barbershop_id = ? AND role = ?",
			c.Param("id"), barbershopID, models.RoleClient,
		).
		First(&client).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var history []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Where("client_id = ? AND barbershop_id = ?", client.ID, barbershopID).
		Order("start_time DESC").
		Limit(50).
		Find(&history).Error; err != nil {

		httperr.Internal(c, "failed_to_load_history", "Erro ao carregar histórico.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"appointments": history,
	})
}
