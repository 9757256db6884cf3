package models

import "time"

type Provider struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Timezone string `gorm:"size:50" json:"timezone"`

	// Booking policy knobs, minutes.
	MinLeadMinutes   int `gorm:"default:120" json:"min_lead_minutes"`
	MinCancelMinutes int `gorm:"default:0" json:"min_cancel_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
