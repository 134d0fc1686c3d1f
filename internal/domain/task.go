package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskType is the kind of study activity a task represents.
type TaskType string

const (
	TaskTypeVideo    TaskType = "VIDEO"
	TaskTypeQuiz     TaskType = "QUIZ"
	TaskTypeReading  TaskType = "READING"
	TaskTypePractice TaskType = "PRACTICE"
	TaskTypeReview   TaskType = "REVIEW"
)

func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeVideo, TaskTypeQuiz, TaskTypeReading, TaskTypePractice, TaskTypeReview:
		return true
	}
	return false
}

func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown task type %q", ErrInvalidTask, s)
	}
	return t, nil
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusSkipped    TaskStatus = "SKIPPED"
)

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusSkipped:
		return true
	}
	return false
}

func (s TaskStatus) IsPending() bool {
	return s == TaskStatusPending
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown task status %q", ErrInvalidTask, s)
	}
	return st, nil
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// MetadataIsRemediation marks tasks created by the review scheduler.
const MetadataIsRemediation = "isRemediation"

// Task is a time-boxed study session on a plan's calendar.
// EndTime is always StartTime plus Duration minutes.
type Task struct {
	ID                string
	PlanID            string
	Title             string
	Description       string
	Type              TaskType
	Status            TaskStatus
	StartTime         time.Time
	EndTime           time.Time
	Duration          int
	TopicID           *string
	Difficulty        string
	OriginalStartTime *time.Time
	OriginalEndTime   *time.Time
	Metadata          map[string]any
}

// NewTaskParams holds the fields accepted when creating a task.
type NewTaskParams struct {
	PlanID      string         `validate:"required"`
	Title       string         `validate:"required,max=255"`
	Description string         `validate:"max=2000"`
	Type        TaskType       `validate:"required,oneof=VIDEO QUIZ READING PRACTICE REVIEW"`
	Status      TaskStatus     `validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED SKIPPED"`
	StartTime   time.Time      `validate:"required"`
	Duration    int            `validate:"required,gt=0,lte=1440"`
	TopicID     *string        `validate:"omitempty,min=1"`
	Difficulty  string         `validate:"omitempty,oneof=easy medium hard"`
	Metadata    map[string]any `validate:"-"`
}

var validate = validator.New()

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidTask, strings.Join(messages, "; "))
}

// NewTask builds a validated task with a fresh id. Status defaults to PENDING
// and difficulty to medium.
func NewTask(p NewTaskParams) (*Task, error) {
	if err := validate.Struct(p); err != nil {
		return nil, formatValidationError(err)
	}

	status := p.Status
	if status == "" {
		status = TaskStatusPending
	}
	difficulty := p.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Task{
		ID:          uuid.NewString(),
		PlanID:      p.PlanID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Status:      status,
		StartTime:   p.StartTime,
		EndTime:     p.StartTime.Add(time.Duration(p.Duration) * time.Minute),
		Duration:    p.Duration,
		TopicID:     p.TopicID,
		Difficulty:  difficulty,
		Metadata:    metadata,
	}, nil
}

// Validate checks the enum fields and the time invariant.
func (t *Task) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: invalid type %q", ErrInvalidTask, t.Type)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidTask, t.Status)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidTask)
	}
	if !t.StartTime.Before(t.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidTask)
	}
	if !t.EndTime.Equal(t.StartTime.Add(t.DurationTime())) {
		return fmt.Errorf("%w: end time does not match duration", ErrInvalidTask)
	}
	return nil
}

func (t *Task) DurationTime() time.Duration {
	return time.Duration(t.Duration) * time.Minute
}

// Reschedule moves the task to start, keeping its duration. The original
// times are recorded only the first time a task is moved.
func (t *Task) Reschedule(start time.Time) {
	if t.OriginalStartTime == nil && t.OriginalEndTime == nil {
		origStart := t.StartTime
		origEnd := t.EndTime
		t.OriginalStartTime = &origStart
		t.OriginalEndTime = &origEnd
	}
	t.StartTime = start
	t.EndTime = start.Add(t.DurationTime())
}

func (t *Task) TopicKey() string {
	if t.TopicID == nil {
		return ""
	}
	return *t.TopicID
}

func (t *Task) IsRemediation() bool {
	v, ok := t.Metadata[MetadataIsRemediation].(bool)
	return ok && v
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.TopicID != nil {
		topic := *t.TopicID
		c.TopicID = &topic
	}
	if t.OriginalStartTime != nil {
		v := *t.OriginalStartTime
		c.OriginalStartTime = &v
	}
	if t.OriginalEndTime != nil {
		v := *t.OriginalEndTime
		c.OriginalEndTime = &v
	}
	c.Metadata = make(map[string]any, len(t.Metadata))
	for k, v := range t.Metadata {
		c.Metadata[k] = v
	}
	return &c
}
