package models

import "time"

// ProviderService is the offering relation: a booking is only valid when
// the provider actually offers the requested service.
type ProviderService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"uniqueIndex:idx_provider_service" json:"provider_id"`
	ServiceID  uint `gorm:"uniqueIndex:idx_provider_service" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
}
