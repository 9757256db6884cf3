package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	booking "github.com/salonops/salon-scheduler/internal/domain/booking"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.September, 7, hour, min, 0, 0, time.UTC)
}

func iv(startHour, startMin, endHour, endMin int) booking.Interval {
	return booking.Interval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b booking.Interval
		want bool
	}{
		{"disjoint before", iv(9, 0, 9, 30), iv(10, 0, 10, 30), false},
		{"disjoint after", iv(11, 0, 11, 30), iv(10, 0, 10, 30), false},
		{"back-to-back is not a conflict", iv(9, 0, 9, 30), iv(9, 30, 10, 0), false},
		{"identical intervals", iv(10, 0, 10, 30), iv(10, 0, 10, 30), true},
		{"partial overlap at start", iv(9, 45, 10, 15), iv(10, 0, 10, 30), true},
		{"partial overlap at end", iv(10, 15, 10, 45), iv(10, 0, 10, 30), true},
		{"containment", iv(9, 0, 12, 0), iv(10, 0, 10, 30), true},
		{"single shared boundary point only", iv(9, 0, 10, 0), iv(10, 0, 11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.a, tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, booking.Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	existing := []booking.Interval{
		iv(9, 0, 9, 30),
		iv(11, 0, 11, 30),
	}

	assert.False(t, booking.OverlapsAny(iv(9, 30, 10, 0), existing))
	assert.True(t, booking.OverlapsAny(iv(9, 15, 9, 45), existing))
	assert.True(t, booking.OverlapsAny(iv(11, 15, 11, 45), existing))
	assert.False(t, booking.OverlapsAny(iv(10, 0, 10, 30), nil))
}
