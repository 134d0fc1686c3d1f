package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

type TaskRepository interface {
	// FindMissed returns pending tasks of the plan whose end time is before now,
	// oldest end time first.
	FindMissed(ctx context.Context, planID string, now time.Time) ([]*Task, error)
	// FindFrom returns tasks of the plan starting at or after from, by start time.
	FindFrom(ctx context.Context, planID string, from time.Time) ([]*Task, error)
	// FindInRange returns tasks of the plan overlapping [start, end).
	FindInRange(ctx context.Context, planID string, start, end time.Time) ([]*Task, error)
	// FindPending returns all pending tasks of the plan in storage order.
	FindPending(ctx context.Context, planID string) ([]*Task, error)
	UpdateSchedule(ctx context.Context, task *Task) error
	Create(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID string) error
}

type AlertRepository interface {
	Create(ctx context.Context, alert *Alert) error
	FindByScheduledTask(ctx context.Context, taskID string) ([]*Alert, error)
	Save(ctx context.Context, alert *Alert) error
}

type UserReader interface {
	FindByID(ctx context.Context, userID string) (*User, error)
}

type StudyPlanReader interface {
	FindByUser(ctx context.Context, userID string) (*StudyPlan, error)
}

type TopicReader interface {
	FindByID(ctx context.Context, topicID string) (*Topic, error)
	FindByIDs(ctx context.Context, topicIDs []string) (map[string]*Topic, error)
}
