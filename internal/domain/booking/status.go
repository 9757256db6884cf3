package booking

import "github.com/salonops/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// transitions is the only permitted mutation path for a booking's status.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// CanTransition reports whether from → to is a legal lifecycle move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// IsOccupying reports whether a booking in this status blocks its interval.
// Cancelled and no-show bookings free the slot.
func IsOccupying(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// OccupyingStatuses is the set used by schedule queries.
func OccupyingStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusCompleted),
	}
}

// ===============================
// Validations
// ===============================

// CanCancel allows cancellation while the booking is not terminal.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeAlreadyTerminal)
	}
	return nil
}

// CanComplete requires a confirmed booking.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanMarkNoShow requires a confirmed booking.
func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeNotConfirmed)
	}
	return nil
}

// InitialStatus is the state a freshly committed booking starts in. There is
// no payment hold phase, so bookings confirm immediately.
func InitialStatus() Status {
	return StatusConfirmed
}
