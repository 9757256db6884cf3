package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Provider / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
		}
		return nil, err
	}
	return &provider, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", serviceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) ProviderOffersService(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProviderService{}).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) ListWindowsForWeekday(
	ctx context.Context,
	providerID uint,
	weekday int,
) ([]models.WorkingWindow, error) {

	var windows []models.WorkingWindow
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND weekday = ? AND active = ?", providerID, weekday, true).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *BookingGormRepository) ListOccupyingForDay(
	ctx context.Context,
	providerID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	return r.listOccupying(r.db.WithContext(ctx), providerID, dayStart, dayEnd)
}

func (r *BookingGormRepository) listOccupying(
	tx *gorm.DB,
	providerID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := tx.
		Select("id", "start_time", "end_time", "status").
		Where(
			"provider_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			providerID, domain.OccupyingStatuses(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (atomic check-and-commit)
// --------------------------------------------------

// CreateBookingIfFree re-validates the requested interval and inserts the
// booking in one transaction. The provider row is locked FOR UPDATE so
// concurrent writers for the same provider serialize on the database even
// across instances; the in-process keyed lock only shortens the queue.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var provider models.Provider
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&provider, b.ProviderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeProviderNotFound)
			}
			return err
		}

		dayStart := startOfDay(b.StartTime)
		existing, err := r.listOccupying(tx, b.ProviderID, dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			return err
		}

		candidate := domain.Interval{Start: b.StartTime, End: b.EndTime}
		for _, ex := range existing {
			if domain.Overlaps(candidate, domain.BookingInterval(ex)) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
		}

		return tx.Create(b).Error
	})

	// The bookings table carries an overlap exclusion constraint; a racing
	// writer on another instance surfaces here instead of double-booking.
	if isOverlapViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isOverlapViolation matches Postgres exclusion (23P01) and unique (23505)
// violations raised by the schema-level booking overlap guard.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
