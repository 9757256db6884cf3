package booking

import "time"

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. A booking
// starting exactly when another ends is not a conflict (back-to-back).
// Both the availability calculator and the write-time guard go through
// this predicate, so the read path and the write path cannot disagree.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OverlapsAny reports whether candidate intersects any of the intervals.
func OverlapsAny(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if Overlaps(candidate, e) {
			return true
		}
	}
	return false
}
