package reschedule

import "time"

type RescheduledTask struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	PreviousStartTime time.Time  `json:"previous_start_time"`
	PreviousEndTime   time.Time  `json:"previous_end_time"`
	NewStartTime      time.Time  `json:"new_start_time"`
	NewEndTime        time.Time  `json:"new_end_time"`
	OriginalStartTime *time.Time `json:"original_start_time,omitempty"`
	OriginalEndTime   *time.Time `json:"original_end_time,omitempty"`
}

type FailedTask struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type Response struct {
	PlanID           string            `json:"plan_id"`
	RescheduledCount int               `json:"rescheduled_count"`
	FailedCount      int               `json:"failed_count"`
	Rescheduled      []RescheduledTask `json:"rescheduled"`
	Failed           []FailedTask      `json:"failed"`
	AlertID          string            `json:"alert_id,omitempty"`
	AlertError       string            `json:"alert_error,omitempty"`
}

const (
	reasonNoSlot = "no available slot"
)
