package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	booking "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/models"
)

// Monday 2026-09-07.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func mondayWindow(start, end string) models.WorkingWindow {
	return models.WorkingWindow{
		ProviderID: 1,
		Weekday:    int(time.Monday),
		StartTime:  start,
		EndTime:    end,
		Active:     true,
	}
}

func starts(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func TestComputeSlots(t *testing.T) {
	windows := []models.WorkingWindow{mondayWindow("09:00", "12:00")}

	t.Run("empty day enumerates every slot", func(t *testing.T) {
		got := booking.ComputeSlots(windows, nil, monday, 30*time.Minute, 0)
		assert.Equal(t,
			[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
			starts(got),
		)
	})

	t.Run("a confirmed booking removes its slot", func(t *testing.T) {
		occupied := []booking.Interval{iv(10, 0, 10, 30)}
		got := booking.ComputeSlots(windows, occupied, monday, 30*time.Minute, 0)
		assert.Equal(t,
			[]string{"09:00", "09:30", "10:30", "11:00", "11:30"},
			starts(got),
		)
	})

	t.Run("booking not aligned to the grid removes every touched slot", func(t *testing.T) {
		occupied := []booking.Interval{iv(10, 15, 10, 45)}
		got := booking.ComputeSlots(windows, occupied, monday, 30*time.Minute, 0)
		assert.Equal(t,
			[]string{"09:00", "09:30", "11:00", "11:30"},
			starts(got),
		)
	})

	t.Run("finer granularity than duration", func(t *testing.T) {
		got := booking.ComputeSlots(
			[]models.WorkingWindow{mondayWindow("09:00", "10:00")},
			nil, monday, 30*time.Minute, 15*time.Minute,
		)
		assert.Equal(t, []string{"09:00", "09:15", "09:30"}, starts(got))
	})

	t.Run("window shorter than duration yields nothing", func(t *testing.T) {
		got := booking.ComputeSlots(
			[]models.WorkingWindow{mondayWindow("09:00", "09:20")},
			nil, monday, 30*time.Minute, 0,
		)
		assert.Empty(t, got)
	})

	t.Run("slot may end exactly at window end", func(t *testing.T) {
		got := booking.ComputeSlots(
			[]models.WorkingWindow{mondayWindow("09:00", "09:30")},
			nil, monday, 30*time.Minute, 0,
		)
		assert.Equal(t, []string{"09:00"}, starts(got))
	})

	t.Run("day without a window yields empty, not an error", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		got := booking.ComputeSlots(windows, nil, sunday, 30*time.Minute, 0)
		assert.Empty(t, got)
	})

	t.Run("inactive window is ignored", func(t *testing.T) {
		w := mondayWindow("09:00", "12:00")
		w.Active = false
		got := booking.ComputeSlots([]models.WorkingWindow{w}, nil, monday, 30*time.Minute, 0)
		assert.Empty(t, got)
	})

	t.Run("split day windows merge ordered", func(t *testing.T) {
		split := []models.WorkingWindow{
			mondayWindow("14:00", "15:00"),
			mondayWindow("09:00", "10:00"),
		}
		got := booking.ComputeSlots(split, nil, monday, 30*time.Minute, 0)
		assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, starts(got))
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		assert.Empty(t, booking.ComputeSlots(windows, nil, monday, 0, 0))
	})

	t.Run("pure function: identical inputs, identical output", func(t *testing.T) {
		occupied := []booking.Interval{iv(10, 0, 10, 30)}
		first := booking.ComputeSlots(windows, occupied, monday, 30*time.Minute, 0)
		second := booking.ComputeSlots(windows, occupied, monday, 30*time.Minute, 0)
		assert.Equal(t, first, second)
	})
}

func TestWithinWindows(t *testing.T) {
	windows := []models.WorkingWindow{mondayWindow("09:00", "12:00")}

	require.True(t, booking.WithinWindows(windows, at(9, 0), at(9, 30)))
	require.True(t, booking.WithinWindows(windows, at(11, 30), at(12, 0)))

	assert.False(t, booking.WithinWindows(windows, at(8, 30), at(9, 0)), "before opening")
	assert.False(t, booking.WithinWindows(windows, at(11, 45), at(12, 15)), "runs past closing")
	assert.False(t, booking.WithinWindows(nil, at(9, 0), at(9, 30)), "no windows at all")
}
