package booking_test

import (
	"time"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/testfixtures"
)

// Monday 2026-09-07, provider works 09:00-12:00, haircut takes 30 minutes.
const (
	providerID uint = 1
	serviceID  uint = 10
	userID     uint = 7
)

var (
	monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	// Early enough that every slot of the day clears the 120-minute lead.
	mondayMorning = time.Date(2026, time.September, 7, 6, 0, 0, 0, time.UTC)
)

func mondayAt(hour, min int) time.Time {
	return time.Date(2026, time.September, 7, hour, min, 0, 0, time.UTC)
}

func newScheduleRepo() *testfixtures.ScheduleRepo {
	repo := testfixtures.NewScheduleRepo()

	repo.AddProvider(models.Provider{
		ID:               providerID,
		Name:             "Aurora Studio",
		Slug:             "aurora-studio",
		Timezone:         "UTC",
		MinLeadMinutes:   120,
		MinCancelMinutes: 60,
	})
	repo.AddService(models.Service{
		ID:          serviceID,
		Name:        "Haircut",
		DurationMin: 30,
		Price:       35,
		Active:      true,
	})
	repo.AddOffering(providerID, serviceID)
	repo.AddWindow(models.WorkingWindow{
		ProviderID: providerID,
		Weekday:    int(time.Monday),
		StartTime:  "09:00",
		EndTime:    "12:00",
		Active:     true,
	})

	return repo
}

func seedConfirmed(repo *testfixtures.ScheduleRepo, hour, min int) models.Booking {
	start := mondayAt(hour, min)
	return repo.SeedBooking(models.Booking{
		ProviderID: providerID,
		ServiceID:  serviceID,
		UserID:     userID,
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     string(domain.StatusConfirmed),
	})
}

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}
