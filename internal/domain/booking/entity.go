package booking

import (
	"time"

	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel transitions a booking to cancelled, recording when and why. The
// freed interval becomes available again because schedule queries only
// consider occupying statuses.
func Cancel(b *models.Booking, now time.Time, reason string) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelReason = reason
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// MarkNoShow records that the client never turned up. Only valid once the
// scheduled start has passed.
func MarkNoShow(b *models.Booking, now time.Time) error {
	if err := CanMarkNoShow(Status(b.Status)); err != nil {
		return err
	}
	if b.StartTime.After(now) {
		return httperr.ErrBusiness(httperr.CodeStillFuture)
	}

	b.Status = string(StatusNoShow)
	b.NoShowAt = &now
	return nil
}

// BookingInterval returns the booking's half-open occupied range.
func BookingInterval(b models.Booking) Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
