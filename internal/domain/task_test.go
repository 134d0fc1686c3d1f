package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	topic := "topic-1"

	tests := []struct {
		name    string
		params  NewTaskParams
		wantErr bool
	}{
		{
			name: "valid task defaults status and difficulty",
			params: NewTaskParams{
				PlanID:    "plan-1",
				Title:     "Derivatives",
				Type:      TaskTypeVideo,
				StartTime: start,
				Duration:  45,
				TopicID:   &topic,
			},
		},
		{
			name: "missing plan id",
			params: NewTaskParams{
				Title:     "Derivatives",
				Type:      TaskTypeVideo,
				StartTime: start,
				Duration:  45,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			params: NewTaskParams{
				PlanID:    "plan-1",
				Title:     "Derivatives",
				Type:      TaskType("LECTURE"),
				StartTime: start,
				Duration:  45,
			},
			wantErr: true,
		},
		{
			name: "zero duration",
			params: NewTaskParams{
				PlanID:    "plan-1",
				Title:     "Derivatives",
				Type:      TaskTypeQuiz,
				StartTime: start,
				Duration:  0,
			},
			wantErr: true,
		},
		{
			name: "unknown difficulty",
			params: NewTaskParams{
				PlanID:     "plan-1",
				Title:      "Derivatives",
				Type:       TaskTypeQuiz,
				StartTime:  start,
				Duration:   30,
				Difficulty: "brutal",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.params)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTask) {
					t.Fatalf("expected ErrInvalidTask, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID == "" {
				t.Error("expected generated id")
			}
			if task.Status != TaskStatusPending {
				t.Errorf("Status: got %q, want %q", task.Status, TaskStatusPending)
			}
			if task.Difficulty != DifficultyMedium {
				t.Errorf("Difficulty: got %q, want %q", task.Difficulty, DifficultyMedium)
			}
			if !task.EndTime.Equal(start.Add(45 * time.Minute)) {
				t.Errorf("EndTime: got %v, want %v", task.EndTime, start.Add(45*time.Minute))
			}
			if err := task.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTaskReschedule_SetsOriginalOnce(t *testing.T) {
	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	task := &Task{
		Type:      TaskTypeReading,
		Status:    TaskStatusPending,
		StartTime: first,
		EndTime:   first.Add(60 * time.Minute),
		Duration:  60,
	}

	second := first.Add(48 * time.Hour)
	task.Reschedule(second)

	if task.OriginalStartTime == nil || !task.OriginalStartTime.Equal(first) {
		t.Fatalf("OriginalStartTime: got %v, want %v", task.OriginalStartTime, first)
	}
	if !task.EndTime.Equal(second.Add(60 * time.Minute)) {
		t.Errorf("EndTime: got %v, want %v", task.EndTime, second.Add(60*time.Minute))
	}

	task.Reschedule(second.Add(24 * time.Hour))

	if !task.OriginalStartTime.Equal(first) {
		t.Errorf("OriginalStartTime changed on second reschedule: got %v, want %v", task.OriginalStartTime, first)
	}
	if !task.OriginalEndTime.Equal(first.Add(60 * time.Minute)) {
		t.Errorf("OriginalEndTime changed on second reschedule: got %v", task.OriginalEndTime)
	}
	if err := task.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTaskValidate_RejectsMismatchedEnd(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	task := &Task{
		Type:      TaskTypeReading,
		Status:    TaskStatusPending,
		StartTime: start,
		EndTime:   start.Add(50 * time.Minute),
		Duration:  60,
	}
	if err := task.Validate(); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("Validate() = %v, want ErrInvalidTask", err)
	}
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    TaskStatus
		wantErr bool
	}{
		{in: "pending", want: TaskStatusPending},
		{in: " IN_PROGRESS ", want: TaskStatusInProgress},
		{in: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTaskStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTaskStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
