package handlers

import (
	"time"

	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

// resolve the provider's official timezone
func locationFromProvider(p *models.Provider) *time.Location {
	if p != nil {
		return timezone.Location(p.Timezone)
	}
	return timezone.Location("")
}

func parseDateInProvider(p *models.Provider, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromProvider(p),
	)
}
