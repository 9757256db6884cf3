package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"index:idx_provider_start" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	UserID uint `gorm:"index" json:"user_id"`

	StartTime time.Time `gorm:"index:idx_provider_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes        string     `gorm:"size:255" json:"notes"`
	CancelReason string     `gorm:"size:255" json:"cancel_reason"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	NoShowAt     *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
