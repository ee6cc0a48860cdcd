package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/barbereasy/barbereasy-api/internal/audit"
	"github.com/barbereasy/barbereasy-api/internal/config"
	"github.com/barbereasy/barbereasy-api/internal/email"
	"github.com/barbereasy/barbereasy-api/internal/handlers"
	infraRepo "github.com/barbereasy/barbereasy-api/internal/infra/repository"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	"github.com/barbereasy/barbereasy-api/internal/tenantctx"
	ucAppointment "github.com/barbereasy/barbereasy-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	mailer email.Sender,
) {

	// ======================================================
	// INFRA (instâncias únicas, injetadas — nada de singleton global)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	tenantRepo := infraRepo.NewTenantGormRepository(db)

	sessionStore := tenantctx.NewStore(rdb, cfg.SessionTTL)
	tenantManager := tenantctx.NewManager(tenantRepo, sessionStore)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(scheduleRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(scheduleRepo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(scheduleRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(scheduleRepo)
	appointmentDetailUC := ucAppointment.NewGetAppointmentDetail(scheduleRepo)
	availabilityUC := ucAppointment.NewGetAvailability(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mailer, tenantManager)
	tenantHandler := handlers.NewTenantHandler(tenantRepo, tenantManager, auditDispatcher)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		appointmentDetailUC,
		availabilityUC,
		scheduleRepo,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/recover", authHandler.Recover)
		api.POST("/auth/reset", authHandler.Reset)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/auth/session", authHandler.Session)

			// resolução e contexto de tenant
			secured.GET("/me/resolution", tenantHandler.Resolution)
			secured.GET("/me/tenants", tenantHandler.MyTenants)
			secured.POST("/me/tenants/select", tenantHandler.Select)

			secured.POST("/tenants", tenantHandler.Create)

			// ------------------------------
			// ESCOPO DO TENANT
			// ------------------------------
			scoped := secured.Group("/tenants/:tenantId")
			scoped.Use(middleware.TenantScope(tenantManager))
			{
				scoped.GET("/clients", clientHandler.List)
				scoped.POST("/clients", clientHandler.Create)
				scoped.GET("/clients/:id", clientHandler.Get)
				scoped.PUT("/clients/:id", clientHandler.Update)
				scoped.DELETE("/clients/:id", clientHandler.Delete)

				scoped.GET("/barbers", barberHandler.List)
				scoped.POST("/barbers", barberHandler.Create)
				scoped.GET("/barbers/:id", barberHandler.Get)
				scoped.PUT("/barbers/:id", barberHandler.Update)
				scoped.DELETE("/barbers/:id", barberHandler.Delete)

				scoped.GET("/services", serviceHandler.List)
				scoped.POST("/services", serviceHandler.Create)
				scoped.GET("/services/:id", serviceHandler.Get)
				scoped.PUT("/services/:id", serviceHandler.Update)
				scoped.DELETE("/services/:id", serviceHandler.Delete)

				scoped.GET("/appointments", appointmentHandler.List)
				scoped.POST("/appointments", appointmentHandler.Create)
				scoped.GET("/appointments/:id", appointmentHandler.Detail)
				scoped.PUT("/appointments/:id", appointmentHandler.Update)
				scoped.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				scoped.DELETE("/appointments/:id", appointmentHandler.Delete)

				scoped.GET("/availability", appointmentHandler.Availability)

				scoped.GET("/settings", settingsHandler.Get)
				scoped.PUT("/settings", settingsHandler.Update)

				scoped.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
