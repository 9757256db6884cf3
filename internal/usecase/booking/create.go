package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonops/salon-scheduler/internal/cache"
	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/events"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/locking"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID     uint
	ProviderID uint
	ServiceID  uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	locks    *locking.KeyLock
	events   events.Sink
	cache    cache.SlotCache
	lockWait time.Duration
	nowFn    func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	locks *locking.KeyLock,
	sink events.Sink,
	slotCache cache.SlotCache,
	lockWait time.Duration,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		locks:    locks,
		events:   sink,
		cache:    slotCache,
		lockWait: lockWait,
		nowFn:    time.Now,
	}
}

// WithClock swaps the time source; tests pin "now" with it.
func (uc *CreateBooking) WithClock(nowFn func() time.Time) *CreateBooking {
	uc.nowFn = nowFn
	return uc
}

func scheduleKey(providerID uint, date string) string {
	return fmt.Sprintf("%d@%s", providerID, date)
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Validation: everything here is checked before any
	// locking, so rejected requests never contend.
	// --------------------------------------------------

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(provider.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	offered, err := uc.repo.ProviderOffersService(ctx, in.ProviderID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotOffered)
	}

	// Minimum lead time: bookings must start after now plus the
	// provider's advance-notice policy.
	minLead := provider.MinLeadMinutes
	if minLead < 0 {
		minLead = 0
	}
	now := uc.nowFn().In(loc)
	if !start.After(now.Add(time.Duration(minLead) * time.Minute)) {
		return nil, httperr.ErrBusiness(httperr.CodePastOrInvalidDate)
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// Re-validated here rather than trusted from a prior availability
	// call: time has passed since the client last queried.
	windows, err := uc.repo.ListWindowsForWeekday(ctx, in.ProviderID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if !domain.WithinWindows(windows, start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	// --------------------------------------------------
	// Exclusive access to (provider, date), bounded wait.
	// --------------------------------------------------

	release, err := uc.locks.Acquire(scheduleKey(in.ProviderID, in.Date), uc.lockWait)
	if err != nil {
		if errors.Is(err, locking.ErrWaitExpired) {
			return nil, httperr.ErrBusiness(httperr.CodeScheduleLockTimeout)
		}
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Check-and-commit (repository re-runs the conflict
	// detector inside its transaction).
	// --------------------------------------------------

	b := &models.Booking{
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		UserID:     in.UserID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.ProviderID, in.Date)

	uc.events.Dispatch(events.Event{
		Type:       events.TypeBookingConfirmed,
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		UserID:     &in.UserID,
	})

	return b, nil
}
