package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diegodonald/saas-barber-sub001/internal/audit"
	"github.com/diegodonald/saas-barber-sub001/internal/config"
	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
	"github.com/diegodonald/saas-barber-sub001/internal/handlers"
	infraRepo "github.com/diegodonald/saas-barber-sub001/internal/infra/repository"
	"github.com/diegodonald/saas-barber-sub001/internal/middleware"
	"github.com/diegodonald/saas-barber-sub001/internal/models"
	ucAppointment "github.com/diegodonald/saas-barber-sub001/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	locker domain.Locker,
	cfg *config.Config,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		locker,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		locker,
		auditDispatcher,
	)

	slotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	statsUC := ucAppointment.NewGetStats(appointmentRepo)

	publicAppointmentUC := ucAppointment.NewCreatePublicAppointment(
		appointmentRepo,
		createAppointmentUC,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		appointmentRepo,
		createAppointmentUC,
		updateAppointmentUC,
		slotsUC,
		listAppointmentsUC,
		statsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, slotsUC, publicAppointmentUC)

	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (POR SLUG)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.AvailabilityForClient)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", adminOnly, barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/clients/:id", clientHandler.Get)

			// ------------------------------
			// SERVICES (CATÁLOGO)
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", adminOnly, serviceHandler.Create)
			secured.PATCH("/me/services/:id", adminOnly, serviceHandler.Update)

			secured.GET("/me/services/:id/barbers", serviceHandler.ListBarbers)
			secured.POST("/me/services/:id/barbers", adminOnly, serviceHandler.AssignBarber)
			secured.DELETE("/me/services/:id/barbers/:barberId", adminOnly, serviceHandler.UnassignBarber)

			// ------------------------------
			// HORÁRIOS (GLOBAL + BARBEIRO)
			// ------------------------------
			secured.GET("/me/schedule/global", scheduleHandler.GetGlobalSchedule)
			secured.PUT("/me/schedule/global", adminOnly, scheduleHandler.UpdateGlobalSchedule)

			secured.GET("/me/schedule", scheduleHandler.GetBarberSchedule)
			secured.PUT("/me/schedule", scheduleHandler.UpdateBarberSchedule)

			secured.GET("/me/schedule/global/exceptions", scheduleHandler.ListGlobalExceptions)
			secured.POST("/me/schedule/global/exceptions", adminOnly, scheduleHandler.CreateGlobalException)
			secured.DELETE("/me/schedule/global/exceptions/:id", adminOnly, scheduleHandler.DeleteGlobalException)

			secured.GET("/me/schedule/exceptions", scheduleHandler.ListBarberExceptions)
			secured.POST("/me/schedule/exceptions", scheduleHandler.CreateBarberException)
			secured.DELETE("/me/schedule/exceptions/:id", scheduleHandler.DeleteBarberException)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.GET("/me/stats", appointmentHandler.Stats)

			secured.GET("/me/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
