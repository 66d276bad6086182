package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
	ucSchedule "github.com/BruksfildServices01/barbershop-booking/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	slotCache := cache.New(rdb, log)

	rules := domain.RulesFromConfig(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, rules, slotCache)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		rules,
		auditDispatcher,
		slotCache,
		log,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		rules,
		auditDispatcher,
		slotCache,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
		slotCache,
	)

	listCustomerUC := ucAppointment.NewListCustomerAppointments(appointmentRepo)
	listBarberUC := ucAppointment.NewListBarberAppointments(appointmentRepo)

	scheduleUC := ucSchedule.NewService(scheduleRepo, auditDispatcher, slotCache)
	catalogUC := ucCatalog.NewCatalog(catalogRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barberHandler := handlers.NewBarberHandler(appointmentRepo)
	serviceHandler := handlers.NewServiceHandler(catalogUC)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		setStatusUC,
		listCustomerUC,
		listBarberUC,
		availabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/schedule", scheduleHandler.GetForBarber)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/availability", appointmentHandler.GetAvailability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENTE AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
		}

		// ------------------------------
		// BARBEIRO
		// ------------------------------
		barber := api.Group("/barber")
		barber.Use(middleware.AuthMiddleware(cfg), middleware.RequireBarber())
		{
			barber.GET("/appointments", appointmentHandler.ListForBarber)
			barber.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			barber.GET("/schedules", scheduleHandler.ListMine)
			barber.POST("/schedules", scheduleHandler.Create)
			barber.PUT("/schedules/:id", scheduleHandler.Update)
			barber.DELETE("/schedules/:id", scheduleHandler.Delete)

			barber.GET("/services", serviceHandler.ListAll)
			barber.POST("/services", serviceHandler.Create)
			barber.PUT("/services/:id", serviceHandler.Update)
			barber.DELETE("/services/:id", serviceHandler.Deactivate)
			barber.POST("/services/:id/restore", serviceHandler.Restore)

			barber.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
