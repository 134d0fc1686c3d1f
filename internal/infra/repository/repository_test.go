package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-study-scheduler/internal/testutil"
)

func setupDB(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	if err := Migrate(ctx, db); err != nil {
		cleanup()
		t.Fatalf("failed to migrate: %v", err)
	}
	return db, cleanup
}

func seedTask(ctx context.Context, t *testing.T, repo domain.TaskRepository, id string, start time.Time, minutes int, status domain.TaskStatus) *domain.Task {
	t.Helper()

	task := &domain.Task{
		ID:         id,
		PlanID:     "plan-1",
		Title:      "Task " + id,
		Type:       domain.TaskTypeReading,
		Status:     status,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(minutes) * time.Minute),
		Duration:   minutes,
		Difficulty: domain.DifficultyMedium,
		Metadata:   map[string]any{"source": "test"},
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("failed to create task %s: %v", id, err)
	}
	return task
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTaskRepositoryQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := setupDB(ctx, t)
	defer cleanup()

	repo := NewTaskRepository(db)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	seedTask(ctx, t, repo, "late", time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), 60, domain.TaskStatusPending)
	seedTask(ctx, t, repo, "early", time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), 60, domain.TaskStatusPending)
	seedTask(ctx, t, repo, "done", time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), 60, domain.TaskStatusCompleted)
	seedTask(ctx, t, repo, "running", time.Date(2024, 3, 10, 11, 30, 0, 0, time.UTC), 60, domain.TaskStatusPending)
	seedTask(ctx, t, repo, "tomorrow", time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), 60, domain.TaskStatusPending)

	tests := []struct {
		name  string
		query func() ([]*domain.Task, error)
		want  []string
	}{
		{
			name:  "missed sorted by end time",
			query: func() ([]*domain.Task, error) { return repo.FindMissed(ctx, "plan-1", now) },
			want:  []string{"early", "late"},
		},
		{
			name:  "from now",
			query: func() ([]*domain.Task, error) { return repo.FindFrom(ctx, "plan-1", now) },
			want:  []string{"tomorrow"},
		},
		{
			name: "in range overlaps",
			query: func() ([]*domain.Task, error) {
				return repo.FindInRange(ctx, "plan-1", now, now.Add(24*time.Hour))
			},
			want: []string{"running", "tomorrow"},
		},
		{
			name:  "pending in insertion order",
			query: func() ([]*domain.Task, error) { return repo.FindPending(ctx, "plan-1") },
			want:  []string{"late", "early", "running", "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ids := taskIDs(got); !equalIDs(ids, tt.want) {
				t.Errorf("got %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestTaskRepositoryUpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := setupDB(ctx, t)
	defer cleanup()

	repo := NewTaskRepository(db)
	start := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	task := seedTask(ctx, t, repo, "a", start, 45, domain.TaskStatusPending)

	task.Reschedule(time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC))
	if err := repo.UpdateSchedule(ctx, task); err != nil {
		t.Fatalf("UpdateSchedule() error = %v", err)
	}

	pending, err := repo.FindPending(ctx, "plan-1")
	if err != nil {
		t.Fatalf("FindPending() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	got := pending[0]
	if !got.StartTime.Equal(task.StartTime) || !got.EndTime.Equal(task.EndTime) {
		t.Errorf("schedule = %v-%v, want %v-%v", got.StartTime, got.EndTime, task.StartTime, task.EndTime)
	}
	if got.OriginalStartTime == nil || !got.OriginalStartTime.Equal(start) {
		t.Errorf("OriginalStartTime = %v, want %v", got.OriginalStartTime, start)
	}
	if got.Metadata["source"] != "test" {
		t.Errorf("metadata = %v", got.Metadata)
	}

	missing := &domain.Task{ID: "missing"}
	if err := repo.UpdateSchedule(ctx, missing); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("UpdateSchedule(missing) error = %v, want %v", err, domain.ErrTaskNotFound)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, domain.ErrTaskNotFound)
	}
}

func TestAlertRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := setupDB(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(db)

	alert, err := domain.NewAlert("user-1", "plan-1", domain.AlertTypeRemediation, domain.SeverityMedium, "review", map[string]any{
		domain.MetadataScheduledTaskID: "task-1",
	})
	if err != nil {
		t.Fatalf("NewAlert() error = %v", err)
	}
	other, _ := domain.NewAlert("user-1", "plan-1", domain.AlertTypeScheduleChange, domain.SeverityLow, "moved", nil)

	for _, a := range []*domain.Alert{alert, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	found, err := repo.FindByScheduledTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("FindByScheduledTask() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != alert.ID {
		t.Fatalf("found = %v, want alert %s", found, alert.ID)
	}

	resolvedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	found[0].Resolve(resolvedAt)
	if err := repo.Save(ctx, found[0]); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	again, err := repo.FindByScheduledTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("FindByScheduledTask() error = %v", err)
	}
	if !again[0].IsResolved || again[0].ResolvedAt == nil || !again[0].ResolvedAt.Equal(resolvedAt) {
		t.Errorf("alert not resolved: %+v", again[0])
	}
}

func TestDirectoryRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := setupDB(ctx, t)
	defer cleanup()

	exam := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := []any{
		&userModel{ID: "user-1", Name: "Student", AvailableDays: []string{"Monday", "wednesday", "Funday"}, StudyHoursPerDay: 2.5, PreferredStudyTime: "morning"},
		&studyPlanModel{ID: "plan-1", UserID: "user-1", ExamDate: exam, StartDate: exam.AddDate(0, -2, 0), EndDate: exam},
		&topicModel{ID: "t1", Name: "Algebra"},
		&topicModel{ID: "t2", Name: "Geometry"},
	}
	for _, row := range rows {
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}

	user, err := NewUserRepository(db).FindByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got := user.Preferences.AvailableDays; len(got) != 2 || got[0] != time.Monday || got[1] != time.Wednesday {
		t.Errorf("AvailableDays = %v, want [Monday Wednesday]", got)
	}
	if _, err := NewUserRepository(db).FindByID(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByID(ghost) error = %v, want %v", err, domain.ErrUserNotFound)
	}

	plan, err := NewStudyPlanRepository(db).FindByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if plan.ID != "plan-1" || !plan.ExamDate.Equal(exam) {
		t.Errorf("plan = %+v", plan)
	}
	if _, err := NewStudyPlanRepository(db).FindByUser(ctx, "ghost"); !errors.Is(err, domain.ErrPlanNotFound) {
		t.Errorf("FindByUser(ghost) error = %v, want %v", err, domain.ErrPlanNotFound)
	}

	topics := NewTopicRepository(db)
	byID, err := topics.FindByIDs(ctx, []string{"t1", "t2", "t3"})
	if err != nil {
		t.Fatalf("FindByIDs() error = %v", err)
	}
	if len(byID) != 2 || byID["t2"].Name != "Geometry" {
		t.Errorf("FindByIDs() = %v", byID)
	}
	if _, err := topics.FindByID(ctx, "t3"); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Errorf("FindByID(t3) error = %v, want %v", err, domain.ErrTopicNotFound)
	}
}
