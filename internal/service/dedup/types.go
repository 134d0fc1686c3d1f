package dedup

import "time"

// Pass names the grouping rule that marked a task.
type Pass string

const (
	PassSameSlot  Pass = "date_time_topic"
	PassCrossDate Pass = "time_topic"
	PassExcessive Pass = "time"
)

// maxPerTimeOfDay is how many tasks Pass C lets share one time of day.
const maxPerTimeOfDay = 3

type DeletedTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TopicName string    `json:"topic_name,omitempty"`
	StartTime time.Time `json:"start_time"`
	Pass      Pass      `json:"pass"`
}

type TimeCount struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

type FailedTask struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type Response struct {
	PlanID             string        `json:"plan_id"`
	DeletedCount       int           `json:"deleted_count"`
	ResolvedAlertCount int           `json:"resolved_alert_count"`
	DeletedTasks       []DeletedTask `json:"deleted_tasks"`
	TimesSummary       []TimeCount   `json:"times_summary"`
	Failed             []FailedTask  `json:"failed"`
	DryRun             bool          `json:"dry_run"`
}
