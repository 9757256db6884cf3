package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	booking "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]booking.Status]bool{
		{booking.StatusPending, booking.StatusConfirmed}:   true,
		{booking.StatusPending, booking.StatusCancelled}:   true,
		{booking.StatusConfirmed, booking.StatusCompleted}: true,
		{booking.StatusConfirmed, booking.StatusCancelled}: true,
		{booking.StatusConfirmed, booking.StatusNoShow}:    true,
	}

	all := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCompleted,
		booking.StatusCancelled,
		booking.StatusNoShow,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]booking.Status{from, to}]
			assert.Equalf(t, want, booking.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalAndOccupying(t *testing.T) {
	assert.False(t, booking.IsTerminal(booking.StatusPending))
	assert.False(t, booking.IsTerminal(booking.StatusConfirmed))
	assert.True(t, booking.IsTerminal(booking.StatusCompleted))
	assert.True(t, booking.IsTerminal(booking.StatusCancelled))
	assert.True(t, booking.IsTerminal(booking.StatusNoShow))

	assert.True(t, booking.IsOccupying(booking.StatusPending))
	assert.True(t, booking.IsOccupying(booking.StatusConfirmed))
	assert.True(t, booking.IsOccupying(booking.StatusCompleted))
	assert.False(t, booking.IsOccupying(booking.StatusCancelled))
	assert.False(t, booking.IsOccupying(booking.StatusNoShow))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, booking.StatusConfirmed, booking.InitialStatus())
}

func confirmedBooking(start time.Time) models.Booking {
	return models.Booking{
		ID:         1,
		ProviderID: 1,
		ServiceID:  1,
		UserID:     7,
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     string(booking.StatusConfirmed),
	}
}

func TestCancelAction(t *testing.T) {
	now := at(9, 0)

	t.Run("confirmed booking cancels", func(t *testing.T) {
		b := confirmedBooking(at(10, 0))
		require.NoError(t, booking.Cancel(&b, now, "client request"))

		assert.Equal(t, string(booking.StatusCancelled), b.Status)
		assert.Equal(t, "client request", b.CancelReason)
		require.NotNil(t, b.CancelledAt)
		assert.Equal(t, now, *b.CancelledAt)
	})

	t.Run("terminal booking stays put", func(t *testing.T) {
		b := confirmedBooking(at(10, 0))
		b.Status = string(booking.StatusCompleted)

		err := booking.Cancel(&b, now, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyTerminal))
		assert.Equal(t, string(booking.StatusCompleted), b.Status)
	})
}

func TestCompleteAction(t *testing.T) {
	b := confirmedBooking(at(10, 0))
	now := at(10, 30)

	require.NoError(t, booking.Complete(&b, now))
	assert.Equal(t, string(booking.StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)

	err := booking.Complete(&b, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestMarkNoShowAction(t *testing.T) {
	t.Run("after the start time", func(t *testing.T) {
		b := confirmedBooking(at(10, 0))
		require.NoError(t, booking.MarkNoShow(&b, at(10, 35)))
		assert.Equal(t, string(booking.StatusNoShow), b.Status)
		require.NotNil(t, b.NoShowAt)
	})

	t.Run("still in the future", func(t *testing.T) {
		b := confirmedBooking(at(10, 0))
		err := booking.MarkNoShow(&b, at(9, 0))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeStillFuture))
		assert.Equal(t, string(booking.StatusConfirmed), b.Status)
	})

	t.Run("not confirmed", func(t *testing.T) {
		b := confirmedBooking(at(10, 0))
		b.Status = string(booking.StatusCancelled)
		err := booking.MarkNoShow(&b, at(10, 35))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotConfirmed))
	})
}
