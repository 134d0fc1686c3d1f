package domain

import (
	"fmt"
	"strings"
	"time"
)

type PreferredStudyTime string

const (
	StudyTimeMorning   PreferredStudyTime = "morning"
	StudyTimeAfternoon PreferredStudyTime = "afternoon"
	StudyTimeEvening   PreferredStudyTime = "evening"
	StudyTimeNight     PreferredStudyTime = "night"
)

type UserPreferences struct {
	AvailableDays      []time.Weekday
	StudyHoursPerDay   float64
	PreferredStudyTime PreferredStudyTime
}

type User struct {
	ID          string
	Name        string
	Preferences UserPreferences
}

// IsAvailable reports whether the user studies on the given weekday.
func (p UserPreferences) IsAvailable(day time.Weekday) bool {
	for _, d := range p.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
	return d, nil
}

// ParseWeekdays converts weekday names, ignoring duplicates.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(names))
	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, nil
}

func WeekdayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
