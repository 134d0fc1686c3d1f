package review

import "time"

type Request struct {
	TopicID string `json:"topic_id" validate:"required"`
	Reason  string `json:"reason" validate:"max=500"`
}

type ScheduledTask struct {
	ID         string         `json:"id"`
	PlanID     string         `json:"plan_id"`
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	Duration   int            `json:"duration"`
	TopicID    string         `json:"topic_id"`
	Difficulty string         `json:"difficulty"`
	Metadata   map[string]any `json:"metadata"`
}

type Response struct {
	Task       ScheduledTask `json:"task"`
	AlertID    string        `json:"alert_id,omitempty"`
	AlertError string        `json:"alert_error,omitempty"`
	Fallback   bool          `json:"fallback"`
}

const (
	sessionMinutes = 30

	// Searched days are offsets from today.
	sweepFirstDay = 1
	sweepLastDay  = 3
)

var preferredHours = []int{9, 14, 18}
