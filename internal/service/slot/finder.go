package slot

import (
	"sort"
	"time"
)

// WorkingHours bounds the hour-of-day window tasks may occupy.
// Candidates start on whole hours in [StartHour, EndHour). A candidate is
// rejected when its end hour exceeds EndHour, so with EndHour 20 a slot may
// end at 20:30 but not at 21:00.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

var DefaultWorkingHours = WorkingHours{StartHour: 9, EndHour: 20}

func (w WorkingHours) Hours() []int {
	hours := make([]int, 0, w.EndHour-w.StartHour)
	for h := w.StartHour; h < w.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

type Request struct {
	Days            []time.Time
	Existing        []Interval
	DurationMinutes int
	Hours           WorkingHours
	// NotBefore skips candidates starting before it. Zero means no lower bound.
	NotBefore time.Time
}

// Result is a chosen slot. Fallback marks the last-resort slot returned when
// every candidate conflicted; a fallback may overlap an existing task.
type Result struct {
	Start    time.Time
	End      time.Time
	Fallback bool
}

// Found reports whether the result is a conflict-free slot.
func (r Result) Found() bool {
	return !r.Fallback && !r.Start.IsZero()
}

func (r Result) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}

// Finder searches calendar days for the earliest conflict-free slot.
// Day boundaries and hours are evaluated in the finder's location.
type Finder struct {
	loc *time.Location
}

func NewFinder(loc *time.Location) *Finder {
	if loc == nil {
		loc = time.UTC
	}
	return &Finder{loc: loc}
}

func (f *Finder) Location() *time.Location {
	return f.loc
}

// FindSlot iterates days in order and hours in ascending order, returning the
// first candidate with no conflicts. When none fits, it returns the last day at
// EndHour:00 with Fallback set. An empty day list yields a zero Result.
func (f *Finder) FindSlot(req Request) Result {
	if len(req.Days) == 0 {
		return Result{}
	}

	hours := req.Hours.Hours()
	for _, day := range req.Days {
		if res, ok := f.TryHours(day, hours, req); ok {
			return res
		}
	}

	last := req.Days[len(req.Days)-1]
	start := f.atHour(last, req.Hours.EndHour)
	return Result{
		Start:    start,
		End:      start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Fallback: true,
	}
}

// TryHours checks the given hours of a single day in order. req.Days is ignored.
func (f *Finder) TryHours(day time.Time, hours []int, req Request) (Result, bool) {
	dayTasks := f.tasksOnDay(day, req.Existing)

	for _, h := range hours {
		candidate := NewInterval(f.atHour(day, h), req.DurationMinutes)
		if f.endHour(day, candidate.End) > req.Hours.EndHour {
			continue
		}
		if !req.NotBefore.IsZero() && candidate.Start.Before(req.NotBefore) {
			continue
		}
		if ConflictsWith(candidate, dayTasks) {
			continue
		}
		return Result{Start: candidate.Start, End: candidate.End}, true
	}
	return Result{}, false
}

// endHour is the wall-clock hour of end in the finder's location, counted
// past 24 when end falls on a later calendar day than day.
func (f *Finder) endHour(day, end time.Time) int {
	local := end.In(f.loc)
	endDay := f.StartOfDay(local)
	days := 0
	for d := f.StartOfDay(day); d.Before(endDay); d = d.AddDate(0, 0, 1) {
		days++
	}
	return local.Hour() + 24*days
}

func (f *Finder) tasksOnDay(day time.Time, existing []Interval) []Interval {
	dayRange := Interval{Start: f.StartOfDay(day)}
	dayRange.End = dayRange.Start.AddDate(0, 0, 1)

	onDay := make([]Interval, 0, len(existing))
	for _, e := range existing {
		if Overlaps(e, dayRange) {
			onDay = append(onDay, e)
		}
	}
	sort.Slice(onDay, func(i, j int) bool {
		return onDay[i].Start.Before(onDay[j].Start)
	})
	return onDay
}

func (f *Finder) StartOfDay(t time.Time) time.Time {
	local := t.In(f.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.loc)
}

func (f *Finder) atHour(day time.Time, hour int) time.Time {
	local := day.In(f.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, f.loc)
}
