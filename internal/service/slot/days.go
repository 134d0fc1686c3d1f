package slot

import "time"

const (
	DefaultHorizonDays  = 14
	DefaultFallbackDays = 7
)

// DayPolicy controls how candidate days are built for rescheduling.
type DayPolicy struct {
	HorizonDays  int
	FallbackDays int
}

var DefaultDayPolicy = DayPolicy{HorizonDays: DefaultHorizonDays, FallbackDays: DefaultFallbackDays}

// CandidateDays returns the next min(daysUntilExam, HorizonDays) calendar days
// starting tomorrow, keeping only available weekdays. When that leaves nothing,
// it returns the next FallbackDays days regardless of availability.
func (f *Finder) CandidateDays(now time.Time, daysUntilExam int, available []time.Weekday, policy DayPolicy) []time.Time {
	span := daysUntilExam
	if span > policy.HorizonDays {
		span = policy.HorizonDays
	}

	allowed := make(map[time.Weekday]bool, len(available))
	for _, d := range available {
		allowed[d] = true
	}

	today := f.StartOfDay(now)
	days := make([]time.Time, 0, span)
	for i := 1; i <= span; i++ {
		day := today.AddDate(0, 0, i)
		if allowed[day.Weekday()] {
			days = append(days, day)
		}
	}
	if len(days) > 0 {
		return days
	}

	fallback := make([]time.Time, 0, policy.FallbackDays)
	for i := 1; i <= policy.FallbackDays; i++ {
		fallback = append(fallback, today.AddDate(0, 0, i))
	}
	return fallback
}
