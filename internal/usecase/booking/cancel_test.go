package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonops/salon-scheduler/internal/cache"
	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/locking"
	"github.com/salonops/salon-scheduler/internal/testfixtures"
	ucBooking "github.com/salonops/salon-scheduler/internal/usecase/booking"
)

type cancelHarness struct {
	repo   *testfixtures.ScheduleRepo
	events *testfixtures.EventRecorder
	cache  *testfixtures.SlotCacheSpy
	clock  *testfixtures.Clock
	uc     *ucBooking.CancelBooking
}

func newCancelHarness() *cancelHarness {
	h := &cancelHarness{
		repo:   newScheduleRepo(),
		events: &testfixtures.EventRecorder{},
		cache:  testfixtures.NewSlotCacheSpy(),
		clock:  testfixtures.NewClock(mondayMorning),
	}
	h.uc = ucBooking.NewCancelBooking(h.repo, h.events, h.cache).
		WithClock(h.clock.NowFunc())
	return h
}

func TestCancelBooking(t *testing.T) {
	t.Run("cancels and records why and when", func(t *testing.T) {
		h := newCancelHarness()
		b := seedConfirmed(h.repo, 10, 0)

		got, err := h.uc.Execute(context.Background(), b.ID, userID, "running late")
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		assert.Equal(t, "running late", got.CancelReason)
		require.NotNil(t, got.CancelledAt)

		assert.Equal(t, []string{"booking_cancelled"}, h.events.Types())
		assert.Equal(t, []string{"2026-09-07"}, h.cache.Invalidations)
	})

	t.Run("not found", func(t *testing.T) {
		h := newCancelHarness()
		_, err := h.uc.Execute(context.Background(), 42, userID, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		h := newCancelHarness()
		b := seedConfirmed(h.repo, 10, 0)

		_, err := h.uc.Execute(context.Background(), b.ID, userID+1, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotOwner))
	})

	t.Run("already terminal", func(t *testing.T) {
		h := newCancelHarness()
		b := seedConfirmed(h.repo, 10, 0)
		b.Status = string(domain.StatusCancelled)
		require.NoError(t, h.repo.UpdateBooking(context.Background(), &b))

		_, err := h.uc.Execute(context.Background(), b.ID, userID, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyTerminal))
	})

	t.Run("too close to the start", func(t *testing.T) {
		h := newCancelHarness()
		b := seedConfirmed(h.repo, 10, 0)
		h.clock.Set(mondayAt(9, 30)) // cancel window is 60min

		_, err := h.uc.Execute(context.Background(), b.ID, userID, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeTooCloseToStart))
	})
}

// Cancellation frees the slot: the cancelled start time shows up in
// availability again.
func TestCancelFreesSlot(t *testing.T) {
	h := newCancelHarness()
	b := seedConfirmed(h.repo, 10, 0)

	avail := ucBooking.NewGetAvailability(h.repo, cache.Noop{}, 0).
		WithClock(h.clock.NowFunc())

	before, err := avail.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	assert.NotContains(t, slotStarts(before), "10:00")

	_, err = h.uc.Execute(context.Background(), b.ID, userID, "plans changed")
	require.NoError(t, err)

	after, err := avail.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	assert.Contains(t, slotStarts(after), "10:00")
}

// A freed slot is bookable again end to end.
func TestCancelThenRebook(t *testing.T) {
	h := newCancelHarness()
	b := seedConfirmed(h.repo, 10, 0)

	_, err := h.uc.Execute(context.Background(), b.ID, userID, "")
	require.NoError(t, err)

	create := ucBooking.NewCreateBooking(
		h.repo, locking.New(), h.events, h.cache, 100*time.Millisecond,
	).WithClock(h.clock.NowFunc())

	nb, err := create.Execute(context.Background(), createInput("10:00"))
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, nb.ID, "history keeps the cancelled booking")
}
