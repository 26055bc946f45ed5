package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	catalogPkg "github.com/RenanMEleoterio/BarberPro-sub000/internal/catalog"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/config"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/handlers"
	infraRepo "github.com/RenanMEleoterio/BarberPro-sub000/internal/infra/repository"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	ucBooking "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/booking"
	ucSlot "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/slot"
	ucStats "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)
	catalog := catalogPkg.New(db, rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING COORDINATOR
	// ======================================================
	bookUC := ucBooking.NewBook(repo, catalog, auditDispatcher)
	cancelUC := ucBooking.NewCancel(repo, auditDispatcher)
	updateUC := ucBooking.NewUpdate(repo, auditDispatcher)
	completeUC := ucBooking.NewComplete(repo, auditDispatcher)
	listUC := ucBooking.NewListForPrincipal(repo)
	getUC := ucBooking.NewGet(repo)

	// ======================================================
	// USE CASES — SLOT REGISTRY
	// ======================================================
	openSlotUC := ucSlot.NewOpen(repo, auditDispatcher)
	openBatchUC := ucSlot.NewOpenBatch(repo, auditDispatcher)
	markSlotUC := ucSlot.NewMarkAvailability(repo, catalog, auditDispatcher)
	removeSlotUC := ucSlot.NewRemove(repo, catalog, auditDispatcher)
	listSlotsUC := ucSlot.NewList(repo, catalog)

	// ======================================================
	// USE CASES — AGGREGATION
	// ======================================================
	overviewUC := ucStats.NewOverview(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		updateUC,
		completeUC,
		listUC,
		getUC,
	)

	slotHandler := handlers.NewSlotHandler(
		openSlotUC,
		openBatchUC,
		markSlotUC,
		removeSlotUC,
		listSlotsUC,
	)

	statsHandler := handlers.NewStatsHandler(overviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-client", authHandler.RegisterClient)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.POST("/auth/register-barber", authHandler.RegisterBarber)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// SLOTS
			// ------------------------------
			secured.POST("/slots", slotHandler.Open)
			secured.POST("/slots/batch", slotHandler.OpenBatch)
			secured.PUT("/slots/:id/availability", slotHandler.SetAvailability)
			secured.DELETE("/slots/:id", slotHandler.Remove)
			secured.GET("/barbers/:id/slots", slotHandler.List)

			// ------------------------------
			// STATS
			// ------------------------------
			secured.GET("/stats", statsHandler.Overview)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
