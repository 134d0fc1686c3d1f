package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	workStartHourEnv         = "WORK_START_HOUR"
	workEndHourEnv           = "WORK_END_HOUR"
	scheduleTimezoneEnv      = "SCHEDULE_TIMEZONE"
	rescheduleHorizonDaysEnv = "RESCHEDULE_HORIZON_DAYS"
	fallbackDaysEnv          = "FALLBACK_DAYS"
	summaryTTLHoursEnv       = "SUMMARY_TTL_HOURS"

	defaultWorkStartHour         = 9
	defaultWorkEndHour           = 20
	defaultScheduleTimezone      = "UTC"
	defaultRescheduleHorizonDays = 14
	defaultFallbackDays          = 7
	defaultSummaryTTLHours       = 24
)

type ScheduleConfig struct {
	WorkStartHour         int
	WorkEndHour           int
	Location              *time.Location
	RescheduleHorizonDays int
	FallbackDays          int
	SummaryTTL            time.Duration
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	tz := getEnvOrDefault(scheduleTimezoneEnv, defaultScheduleTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, tz)
	}

	return &ScheduleConfig{
		WorkStartHour:         getIntOrDefault(workStartHourEnv, defaultWorkStartHour),
		WorkEndHour:           getIntOrDefault(workEndHourEnv, defaultWorkEndHour),
		Location:              loc,
		RescheduleHorizonDays: getIntOrDefault(rescheduleHorizonDaysEnv, defaultRescheduleHorizonDays),
		FallbackDays:          getIntOrDefault(fallbackDaysEnv, defaultFallbackDays),
		SummaryTTL:            time.Duration(getIntOrDefault(summaryTTLHoursEnv, defaultSummaryTTLHours)) * time.Hour,
	}, nil
}

func (c *ScheduleConfig) Validate() error {
	if c.WorkStartHour < 0 || c.WorkEndHour > 24 || c.WorkStartHour >= c.WorkEndHour {
		return fmt.Errorf("%w: working hours %d-%d", ErrInvalidScheduleValue, c.WorkStartHour, c.WorkEndHour)
	}
	if c.RescheduleHorizonDays <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidScheduleValue, rescheduleHorizonDaysEnv)
	}
	if c.FallbackDays <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidScheduleValue, fallbackDaysEnv)
	}
	return nil
}

// getIntOrDefault returns defaultValue for unset, unparseable or negative values.
func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return defaultValue
}
