package reschedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/planlock"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/runlog"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/slot"
)

type Config struct {
	Hours     slot.WorkingHours
	DayPolicy slot.DayPolicy
}

func DefaultConfig() Config {
	return Config{Hours: slot.DefaultWorkingHours, DayPolicy: slot.DefaultDayPolicy}
}

type Service struct {
	users            domain.UserReader
	plans            domain.StudyPlanReader
	taskRepo         domain.TaskRepository
	alertRepo        domain.AlertRepository
	finder           *slot.Finder
	locker           *planlock.Locker
	runLog           *runlog.Log
	schedulerMetrics *metrics.SchedulerMetrics
	cfg              Config
}

func NewService(
	users domain.UserReader,
	plans domain.StudyPlanReader,
	taskRepo domain.TaskRepository,
	alertRepo domain.AlertRepository,
	finder *slot.Finder,
	locker *planlock.Locker,
	runLog *runlog.Log,
	schedulerMetrics *metrics.SchedulerMetrics,
	cfg Config,
) *Service {
	return &Service{
		users:            users,
		plans:            plans,
		taskRepo:         taskRepo,
		alertRepo:        alertRepo,
		finder:           finder,
		locker:           locker,
		runLog:           runLog,
		schedulerMetrics: schedulerMetrics,
		cfg:              cfg,
	}
}

// Reschedule moves the user's overdue pending tasks into free slots on the
// upcoming available days. Tasks with the oldest deadline pick first.
func (s *Service) Reschedule(ctx context.Context, userID string, now time.Time) (*Response, error) {
	started := time.Now()
	ctx, span := tracing.StartOperationSpan(ctx, "reschedule_missed", userID, now)
	defer span.End()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		tracing.RecordOperationResult(span, "", 0, 0, err)
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	plan, err := s.plans.FindByUser(ctx, userID)
	if err != nil {
		tracing.RecordOperationResult(span, "", 0, 0, err)
		return nil, fmt.Errorf("failed to load study plan for user %s: %w", userID, err)
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, plan.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire plan %s: %w", plan.ID, err)
		}
		defer unlock()
	}

	resp, err := s.RescheduleForPlan(ctx, plan, user, now)
	if err != nil {
		tracing.RecordOperationResult(span, plan.ID, 0, 0, err)
		return nil, err
	}
	tracing.RecordOperationResult(span, plan.ID, resp.RescheduledCount, resp.FailedCount, nil)

	duration := time.Since(started)
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordOperationDuration(ctx, domain.OperationReschedule.String(), duration)
	}
	s.runLog.Record(ctx, runlog.Entry{
		PlanID:    plan.ID,
		UserID:    userID,
		Operation: domain.OperationReschedule,
		RanAt:     now,
		Succeeded: resp.RescheduledCount,
		Failed:    resp.FailedCount,
		Duration:  duration,
		Payload:   resp,
	})

	return resp, nil
}

// RescheduleForPlan runs one rescheduling pass over plan. The caller must hold the plan lock.
func (s *Service) RescheduleForPlan(ctx context.Context, plan *domain.StudyPlan, user *domain.User, now time.Time) (*Response, error) {
	missed, err := s.taskRepo.FindMissed(ctx, plan.ID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch missed tasks",
			slog.String("plan_id", plan.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to fetch missed tasks: %w", err)
	}

	future, err := s.taskRepo.FindFrom(ctx, plan.ID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch future tasks",
			slog.String("plan_id", plan.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to fetch future tasks: %w", err)
	}

	working := make([]slot.Interval, 0, len(future)+len(missed))
	for _, t := range future {
		working = append(working, slot.Interval{Start: t.StartTime, End: t.EndTime})
	}

	days := s.finder.CandidateDays(now, plan.DaysUntilExam(now), user.Preferences.AvailableDays, s.cfg.DayPolicy)

	slog.InfoContext(ctx, "rescheduling missed tasks",
		slog.String("plan_id", plan.ID),
		slog.Int("missed_count", len(missed)),
		slog.Int("future_count", len(future)),
		slog.Int("candidate_days", len(days)),
	)

	resp := &Response{
		PlanID:      plan.ID,
		Rescheduled: make([]RescheduledTask, 0, len(missed)),
		Failed:      make([]FailedTask, 0),
	}

	for _, task := range missed {
		item, reason := s.rescheduleOne(ctx, task, days, working)
		if reason != "" {
			resp.Failed = append(resp.Failed, FailedTask{ID: task.ID, Title: task.Title, Reason: reason})
			if s.schedulerMetrics != nil {
				s.schedulerMetrics.RecordMissedTask(ctx, "failed")
			}
			continue
		}

		working = append(working, slot.Interval{Start: item.NewStartTime, End: item.NewEndTime})
		resp.Rescheduled = append(resp.Rescheduled, item)
		if s.schedulerMetrics != nil {
			s.schedulerMetrics.RecordMissedTask(ctx, "rescheduled")
		}
	}

	resp.RescheduledCount = len(resp.Rescheduled)
	resp.FailedCount = len(resp.Failed)

	if resp.RescheduledCount > 0 {
		alert, err := s.createAlert(ctx, plan, resp)
		if err != nil {
			slog.WarnContext(ctx, "failed to create schedule change alert",
				slog.String("plan_id", plan.ID),
				slog.String("error", err.Error()),
			)
			resp.AlertError = err.Error()
		} else {
			resp.AlertID = alert.ID
		}
	}

	slog.InfoContext(ctx, "missed tasks rescheduled",
		slog.String("plan_id", plan.ID),
		slog.Int("rescheduled", resp.RescheduledCount),
		slog.Int("failed", resp.FailedCount),
	)

	return resp, nil
}

// rescheduleOne returns a non-empty reason when the task could not be moved.
// The task is only mutated after the repository accepts the update.
func (s *Service) rescheduleOne(ctx context.Context, task *domain.Task, days []time.Time, working []slot.Interval) (item RescheduledTask, reason string) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic while rescheduling task",
				slog.String("task_id", task.ID),
				slog.String("panic", fmt.Sprint(r)),
			)
			item, reason = RescheduledTask{}, fmt.Sprintf("unexpected error: %v", r)
		}
	}()

	if task.Duration <= 0 {
		return RescheduledTask{}, "invalid duration"
	}

	_, span := tracing.StartSlotSearchSpan(ctx, task.ID, len(days))
	res := s.finder.FindSlot(slot.Request{
		Days:            days,
		Existing:        working,
		DurationMinutes: task.Duration,
		Hours:           s.cfg.Hours,
	})
	tracing.RecordSlotResult(span, res.Start, res.Fallback)
	span.End()

	if !res.Found() {
		slog.WarnContext(ctx, "no available slot for missed task",
			slog.String("task_id", task.ID),
			slog.Int("duration", task.Duration),
		)
		return RescheduledTask{}, reasonNoSlot
	}

	updated := task.Clone()
	updated.Reschedule(res.Start)

	if err := s.taskRepo.UpdateSchedule(ctx, updated); err != nil {
		slog.ErrorContext(ctx, "failed to update task schedule",
			slog.String("task_id", task.ID),
			slog.String("error", err.Error()),
		)
		return RescheduledTask{}, fmt.Sprintf("failed to update task: %v", err)
	}

	item = RescheduledTask{
		ID:                task.ID,
		Title:             task.Title,
		PreviousStartTime: task.StartTime,
		PreviousEndTime:   task.EndTime,
		NewStartTime:      updated.StartTime,
		NewEndTime:        updated.EndTime,
		OriginalStartTime: updated.OriginalStartTime,
		OriginalEndTime:   updated.OriginalEndTime,
	}
	*task = *updated

	slog.DebugContext(ctx, "task rescheduled",
		slog.String("task_id", task.ID),
		slog.Time("previous_start", item.PreviousStartTime),
		slog.Time("new_start", item.NewStartTime),
	)
	return item, ""
}

func (s *Service) createAlert(ctx context.Context, plan *domain.StudyPlan, resp *Response) (*domain.Alert, error) {
	message := fmt.Sprintf("%d missed task(s) were rescheduled", resp.RescheduledCount)
	if resp.FailedCount > 0 {
		message += fmt.Sprintf(", %d could not be rescheduled", resp.FailedCount)
	}

	ids := make([]string, 0, len(resp.Rescheduled))
	for _, r := range resp.Rescheduled {
		ids = append(ids, r.ID)
	}

	alert, err := domain.NewAlert(plan.UserID, plan.ID, domain.AlertTypeScheduleChange, domain.SeverityMedium, message, map[string]any{
		"rescheduledTaskCount": resp.RescheduledCount,
		"failedTaskCount":      resp.FailedCount,
		"rescheduledTaskIds":   ids,
	})
	if err != nil {
		return nil, err
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordAlertCreated(ctx, string(alert.Type))
	}
	return alert, nil
}
