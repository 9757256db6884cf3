package events

import "time"

// Lifecycle event types consumed by the notification collaborator.
const (
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingCancelled = "booking_cancelled"
	TypeBookingCompleted = "booking_completed"
	TypeBookingNoShow    = "booking_no_show"
)

type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	BookingID  uint      `json:"booking_id"`
	ProviderID uint      `json:"provider_id"`
	UserID     *uint     `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Metadata   any       `json:"metadata,omitempty"`
}

// Sink accepts lifecycle events without blocking the request path.
type Sink interface {
	Dispatch(ev Event)
}
