package booking

import (
	"sort"
	"time"

	"github.com/salonops/salon-scheduler/internal/models"
)

// ResolveWindow anchors a weekly working window onto a concrete date.
// The second return is false when the window is inactive, malformed or
// belongs to another weekday.
func ResolveWindow(w models.WorkingWindow, date time.Time) (Interval, bool) {
	if !w.Active || w.Weekday != int(date.Weekday()) {
		return Interval{}, false
	}

	start, err := atTimeOfDay(date, w.StartTime)
	if err != nil {
		return Interval{}, false
	}
	end, err := atTimeOfDay(date, w.EndTime)
	if err != nil {
		return Interval{}, false
	}
	if !start.Before(end) {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

func atTimeOfDay(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// ComputeSlots enumerates the valid start times for a service of the given
// duration on date, stepping by granularity across every working window that
// falls on that weekday and discarding candidates that overlap an occupying
// booking. Pure: no I/O, identical inputs yield identical output, so callers
// may re-invoke it freely after a conflict.
//
// A zero or negative granularity means "step by the service duration".
// A date with no matching window yields an empty result, not an error.
func ComputeSlots(
	windows []models.WorkingWindow,
	occupied []Interval,
	date time.Time,
	serviceDuration time.Duration,
	granularity time.Duration,
) []time.Time {

	if serviceDuration <= 0 {
		return nil
	}
	if granularity <= 0 {
		granularity = serviceDuration
	}

	var starts []time.Time
	for _, w := range windows {
		win, ok := ResolveWindow(w, date)
		if !ok {
			continue
		}

		for cur := win.Start; !cur.Add(serviceDuration).After(win.End); cur = cur.Add(granularity) {
			candidate := Interval{Start: cur, End: cur.Add(serviceDuration)}
			if OverlapsAny(candidate, occupied) {
				continue
			}
			starts = append(starts, cur)
		}
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	// Windows on the same day may touch; drop duplicate start times.
	out := starts[:0]
	for i, s := range starts {
		if i > 0 && s.Equal(starts[i-1]) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// WithinWindows reports whether [start, end) fits entirely inside one of the
// provider's working windows on start's date.
func WithinWindows(windows []models.WorkingWindow, start, end time.Time) bool {
	for _, w := range windows {
		win, ok := ResolveWindow(w, start)
		if !ok {
			continue
		}
		if !start.Before(win.Start) && !end.After(win.End) {
			return true
		}
	}
	return false
}
