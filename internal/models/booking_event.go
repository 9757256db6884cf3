package models

import "time"

// BookingEvent is the persisted lifecycle trail. Bookings are never deleted,
// and every status change leaves a row here.
type BookingEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID    string `gorm:"size:36;uniqueIndex" json:"event_id"`
	BookingID  uint   `gorm:"index" json:"booking_id"`
	ProviderID uint   `json:"provider_id"`
	UserID     *uint  `json:"user_id"`

	Type     string `gorm:"size:50;not null" json:"type"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
