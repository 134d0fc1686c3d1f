package slot

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

// Overlaps applies the three-way test: a starts inside b, a ends inside b,
// or one interval contains the other. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	startsInside := !a.Start.Before(b.Start) && a.Start.Before(b.End)
	endsInside := a.End.After(b.Start) && !a.End.After(b.End)
	contains := !a.Start.After(b.Start) && !a.End.Before(b.End)
	containedBy := !b.Start.After(a.Start) && !b.End.Before(a.End)
	return startsInside || endsInside || contains || containedBy
}

// ConflictsWith reports whether candidate overlaps any of existing.
func ConflictsWith(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if Overlaps(candidate, e) {
			return true
		}
	}
	return false
}
