package dto

import "time"

// BookingListDTO is the day-agenda row handed to operators.
type BookingListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	UserID      uint      `json:"user_id"`
	ServiceName string    `json:"service_name"`
}
