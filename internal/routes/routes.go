package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/cache"
	"github.com/salonops/salon-scheduler/internal/config"
	"github.com/salonops/salon-scheduler/internal/events"
	"github.com/salonops/salon-scheduler/internal/handlers"
	infraRepo "github.com/salonops/salon-scheduler/internal/infra/repository"
	"github.com/salonops/salon-scheduler/internal/locking"
	ucBooking "github.com/salonops/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleLocks := locking.New()
	slotCache := cache.NewRedis(cfg)

	publisher := events.NewKafkaPublisher(cfg)
	dispatcher := events.NewDispatcher(db, publisher)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		slotCache,
		cfg.SlotGranularityMin,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		scheduleLocks,
		dispatcher,
		slotCache,
		cfg.ScheduleLockWait,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		dispatcher,
		slotCache,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		dispatcher,
	)

	markNoShowUC := ucBooking.NewMarkNoShow(
		bookingRepo,
		dispatcher,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		bookingRepo,
		getAvailabilityUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		markNoShowUC,
		listBookingsByDateUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/providers/:id/availability", availabilityHandler.Get)
		api.GET("/providers/:id/agenda", bookingHandler.ListByDate)

		api.POST("/bookings", bookingHandler.Create)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		api.PATCH("/bookings/:id/complete", bookingHandler.Complete)
		api.PATCH("/bookings/:id/no-show", bookingHandler.MarkNoShow)
	}
}
