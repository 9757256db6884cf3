package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" when err is not a business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Business error codes used across the booking engine. Callers branch on
// these, never on messages.
const (
	// Validation: safe to retry after correcting input.
	CodeProviderNotFound  = "provider_not_found"
	CodeServiceNotFound   = "service_not_found"
	CodeServiceNotOffered = "service_not_offered"
	CodePastOrInvalidDate = "past_or_invalid_date"
	CodeInvalidDateOrTime = "invalid_date_or_time"

	// Contention: expected under load; re-query availability before retrying.
	CodeSlotConflict        = "slot_conflict"
	CodeScheduleLockTimeout = "schedule_lock_timeout"
	CodeOutsideWorkingHours = "outside_working_hours"

	// State: caller logic errors, surfaced directly.
	CodeBookingNotFound = "booking_not_found"
	CodeAlreadyTerminal = "already_terminal"
	CodeNotOwner        = "not_owner"
	CodeTooCloseToStart = "too_close_to_start"
	CodeNotConfirmed    = "not_confirmed"
	CodeStillFuture     = "still_future"
	CodeInvalidState    = "invalid_state"
)
