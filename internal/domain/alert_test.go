package domain

import (
	"errors"
	"testing"
	"time"
)

func TestAlertResolve(t *testing.T) {
	alert, err := NewAlert("user-1", "plan-1", AlertTypeRemediation, SeverityMedium, "review", map[string]any{
		MetadataScheduledTaskID: "task-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := alert.ScheduledTaskID(); got != "task-1" {
		t.Errorf("ScheduledTaskID() = %q, want %q", got, "task-1")
	}

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if !alert.Resolve(now) {
		t.Fatal("Resolve() = false on first call")
	}
	if !alert.IsResolved || alert.ResolvedAt == nil || !alert.ResolvedAt.Equal(now) {
		t.Errorf("alert not resolved at %v: %+v", now, alert)
	}
	if alert.Resolve(now.Add(time.Hour)) {
		t.Error("Resolve() = true on already resolved alert")
	}
	if !alert.ResolvedAt.Equal(now) {
		t.Errorf("ResolvedAt overwritten: got %v", alert.ResolvedAt)
	}
}

func TestNewAlert_Invalid(t *testing.T) {
	_, err := NewAlert("user-1", "plan-1", AlertType("NOISE"), SeverityLow, "", nil)
	if !errors.Is(err, ErrInvalidAlert) {
		t.Errorf("expected ErrInvalidAlert, got %v", err)
	}
	_, err = NewAlert("", "plan-1", AlertTypeMilestone, SeverityLow, "", nil)
	if !errors.Is(err, ErrInvalidAlert) {
		t.Errorf("expected ErrInvalidAlert for missing user, got %v", err)
	}
}

func TestParseWeekdays(t *testing.T) {
	days, err := ParseWeekdays([]string{"Monday", "wednesday", "FRIDAY", "monday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(days) != len(want) {
		t.Fatalf("got %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %v, want %v", i, days[i], want[i])
		}
	}

	if _, err := ParseWeekdays([]string{"Funday"}); err == nil {
		t.Error("expected error for unknown weekday")
	}
}

func TestStudyPlanDaysUntilExam(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		exam time.Time
		want int
	}{
		{name: "exam in the past", exam: now.Add(-time.Hour), want: 0},
		{name: "partial day rounds up", exam: now.Add(30 * time.Hour), want: 2},
		{name: "exact days", exam: now.Add(72 * time.Hour), want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &StudyPlan{ExamDate: tt.exam}
			if got := p.DaysUntilExam(now); got != tt.want {
				t.Errorf("DaysUntilExam() = %d, want %d", got, tt.want)
			}
		})
	}
}
