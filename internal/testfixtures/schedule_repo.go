package testfixtures

import (
	"context"
	"sync"
	"time"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

// ScheduleRepo is an in-memory schedule repository. CreateBookingIfFree
// performs the same check-and-commit the gorm repository does, guarded by
// a single mutex, so concurrency tests exercise real interleavings.
type ScheduleRepo struct {
	mu sync.Mutex

	Providers map[uint]*models.Provider
	Services  map[uint]*models.Service
	Offerings map[uint]map[uint]bool
	Windows   []models.WorkingWindow
	Bookings  []models.Booking

	nextID uint
}

func NewScheduleRepo() *ScheduleRepo {
	return &ScheduleRepo{
		Providers: make(map[uint]*models.Provider),
		Services:  make(map[uint]*models.Service),
		Offerings: make(map[uint]map[uint]bool),
	}
}

// ------------------------------
// Seeding helpers
// ------------------------------

func (r *ScheduleRepo) AddProvider(p models.Provider) {
	r.Providers[p.ID] = &p
}

func (r *ScheduleRepo) AddService(s models.Service) {
	r.Services[s.ID] = &s
}

func (r *ScheduleRepo) AddOffering(providerID, serviceID uint) {
	if r.Offerings[providerID] == nil {
		r.Offerings[providerID] = make(map[uint]bool)
	}
	r.Offerings[providerID][serviceID] = true
}

func (r *ScheduleRepo) AddWindow(w models.WorkingWindow) {
	r.Windows = append(r.Windows, w)
}

// SeedBooking inserts a booking directly, bypassing conflict checks.
func (r *ScheduleRepo) SeedBooking(b models.Booking) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	r.Bookings = append(r.Bookings, b)
	return b
}

// ------------------------------
// domain.Repository
// ------------------------------

func (r *ScheduleRepo) GetProviderByID(_ context.Context, id uint) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Providers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *ScheduleRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.Services[serviceID]
	if !ok || !s.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *ScheduleRepo) ProviderOffersService(_ context.Context, providerID, serviceID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Offerings[providerID][serviceID], nil
}

func (r *ScheduleRepo) ListWindowsForWeekday(_ context.Context, providerID uint, weekday int) ([]models.WorkingWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.WorkingWindow
	for _, w := range r.Windows {
		if w.ProviderID == providerID && w.Weekday == weekday && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *ScheduleRepo) ListOccupyingForDay(_ context.Context, providerID uint, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupyingLocked(providerID, dayStart, dayEnd), nil
}

func (r *ScheduleRepo) occupyingLocked(providerID uint, dayStart, dayEnd time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range r.Bookings {
		if b.ProviderID != providerID {
			continue
		}
		if !domain.IsOccupying(domain.Status(b.Status)) {
			continue
		}
		if b.StartTime.Before(dayStart) || !b.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *ScheduleRepo) CreateBookingIfFree(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dayStart := time.Date(
		b.StartTime.Year(), b.StartTime.Month(), b.StartTime.Day(),
		0, 0, 0, 0,
		b.StartTime.Location(),
	)

	candidate := domain.Interval{Start: b.StartTime, End: b.EndTime}
	for _, ex := range r.occupyingLocked(b.ProviderID, dayStart, dayStart.Add(24*time.Hour)) {
		if domain.Overlaps(candidate, domain.BookingInterval(ex)) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.Bookings = append(r.Bookings, *b)
	return nil
}

func (r *ScheduleRepo) GetBookingByID(_ context.Context, bookingID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.Bookings {
		if b.ID == bookingID {
			cp := b
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (r *ScheduleRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Bookings {
		if r.Bookings[i].ID == b.ID {
			r.Bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (r *ScheduleRepo) ListBookingsForPeriod(_ context.Context, providerID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.Bookings {
		if b.ProviderID != providerID {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

var _ domain.Repository = (*ScheduleRepo)(nil)
