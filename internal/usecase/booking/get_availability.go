package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/cache"
	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo           domain.Repository
	cache          cache.SlotCache
	granularityMin int
	nowFn          func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	slotCache cache.SlotCache,
	granularityMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:           repo,
		cache:          slotCache,
		granularityMin: granularityMin,
		nowFn:          time.Now,
	}
}

// WithClock swaps the time source; tests pin "now" with it.
func (uc *GetAvailability) WithClock(nowFn func() time.Time) *GetAvailability {
	uc.nowFn = nowFn
	return uc
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
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

	// Cutoff mirrors the lead-time rule the create path enforces, so no
	// advertised slot is one the engine would immediately refuse. The
	// cache stores the full day and the cutoff is applied on the way out,
	// keeping cached entries valid as the clock moves.
	minLead := provider.MinLeadMinutes
	if minLead < 0 {
		minLead = 0
	}
	loc := timezone.Location(provider.Timezone)
	cutoff := uc.nowFn().In(loc).Add(time.Duration(minLead) * time.Minute)

	dateKey := in.Date.Format("2006-01-02")
	if slots, ok := uc.cache.Get(ctx, in.ProviderID, in.ServiceID, dateKey); ok {
		return pruneBeforeCutoff(slots, in.Date, cutoff), nil
	}

	windows, err := uc.repo.ListWindowsForWeekday(ctx, in.ProviderID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	bookings, err := uc.repo.ListOccupyingForDay(ctx, in.ProviderID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	occupied := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		occupied = append(occupied, domain.BookingInterval(b))
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	granularity := time.Duration(uc.granularityMin) * time.Minute

	starts := domain.ComputeSlots(windows, occupied, in.Date, duration, granularity)

	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, domain.TimeSlot{
			Start: s.Format("15:04"),
			End:   s.Add(duration).Format("15:04"),
		})
	}

	uc.cache.Set(ctx, in.ProviderID, in.ServiceID, dateKey, slots)

	return pruneBeforeCutoff(slots, in.Date, cutoff), nil
}

// pruneBeforeCutoff keeps only slots starting strictly after the cutoff,
// the same comparison the create path applies to a requested start.
func pruneBeforeCutoff(slots []domain.TimeSlot, date time.Time, cutoff time.Time) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		hm, err := time.Parse("15:04", s.Start)
		if err != nil {
			continue
		}
		start := time.Date(
			date.Year(), date.Month(), date.Day(),
			hm.Hour(), hm.Minute(), 0, 0,
			date.Location(),
		)
		if start.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
