package booking

import (
	"context"
	"time"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/events"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

// MarkNoShow is administrative: an external scheduler invokes it for
// confirmed bookings whose start time has passed without the client
// turning up.
type MarkNoShow struct {
	repo   domain.Repository
	events events.Sink
	nowFn  func() time.Time
}

func NewMarkNoShow(
	repo domain.Repository,
	sink events.Sink,
) *MarkNoShow {
	return &MarkNoShow{
		repo:   repo,
		events: sink,
		nowFn:  time.Now,
	}
}

func (uc *MarkNoShow) WithClock(nowFn func() time.Time) *MarkNoShow {
	uc.nowFn = nowFn
	return uc
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	provider, err := uc.repo.GetProviderByID(ctx, b.ProviderID)
	if err != nil {
		return nil, err
	}

	now := uc.nowFn().In(timezone.Location(provider.Timezone))
	if err := domain.MarkNoShow(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Type:       events.TypeBookingNoShow,
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
	})

	return b, nil
}
