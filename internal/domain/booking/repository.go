package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Provider / Service --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	ProviderOffersService(
		ctx context.Context,
		providerID uint,
		serviceID uint,
	) (bool, error)

	// -------- Schedule --------
	ListWindowsForWeekday(
		ctx context.Context,
		providerID uint,
		weekday int,
	) ([]models.WorkingWindow, error)

	ListOccupyingForDay(
		ctx context.Context,
		providerID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Booking (atomic check-and-commit) --------
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Agenda --------
	ListBookingsForPeriod(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
