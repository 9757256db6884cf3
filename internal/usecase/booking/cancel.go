package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/cache"
	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/events"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	events events.Sink
	cache  cache.SlotCache
	nowFn  func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	sink events.Sink,
	slotCache cache.SlotCache,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		events: sink,
		cache:  slotCache,
		nowFn:  time.Now,
	}
}

func (uc *CancelBooking) WithClock(nowFn func() time.Time) *CancelBooking {
	uc.nowFn = nowFn
	return uc
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeNotOwner)
	}

	provider, err := uc.repo.GetProviderByID(ctx, b.ProviderID)
	if err != nil {
		return nil, err
	}

	now := uc.nowFn().In(timezone.Location(provider.Timezone))

	// Terminal-state check first so already_terminal wins over the
	// cancellation window for past bookings.
	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	cancelWindow := time.Duration(provider.MinCancelMinutes) * time.Minute
	if !b.StartTime.After(now.Add(cancelWindow)) {
		return nil, httperr.ErrBusiness(httperr.CodeTooCloseToStart)
	}

	if err := domain.Cancel(b, now, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// The freed interval shows up in availability as soon as the cached
	// slot sets for that day are dropped.
	uc.cache.Invalidate(ctx, b.ProviderID, b.StartTime.Format("2006-01-02"))

	uc.events.Dispatch(events.Event{
		Type:       events.TypeBookingCancelled,
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		UserID:     &userID,
		Metadata:   map[string]string{"reason": reason},
	})

	return b, nil
}
