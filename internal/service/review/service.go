package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/planlock"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/runlog"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/slot"
)

type Service struct {
	plans            domain.StudyPlanReader
	topics           domain.TopicReader
	taskRepo         domain.TaskRepository
	alertRepo        domain.AlertRepository
	finder           *slot.Finder
	locker           *planlock.Locker
	runLog           *runlog.Log
	schedulerMetrics *metrics.SchedulerMetrics
	hours            slot.WorkingHours
	validate         *validator.Validate
}

func NewService(
	plans domain.StudyPlanReader,
	topics domain.TopicReader,
	taskRepo domain.TaskRepository,
	alertRepo domain.AlertRepository,
	finder *slot.Finder,
	locker *planlock.Locker,
	runLog *runlog.Log,
	schedulerMetrics *metrics.SchedulerMetrics,
	hours slot.WorkingHours,
) *Service {
	return &Service{
		plans:            plans,
		topics:           topics,
		taskRepo:         taskRepo,
		alertRepo:        alertRepo,
		finder:           finder,
		locker:           locker,
		runLog:           runLog,
		schedulerMetrics: schedulerMetrics,
		hours:            hours,
		validate:         validator.New(),
	}
}

// ScheduleReview books a 30 minute remediation session on the topic within
// the next three days and raises a REMEDIATION alert pointing at it.
func (s *Service) ScheduleReview(ctx context.Context, userID string, req Request, now time.Time) (*Response, error) {
	started := time.Now()
	ctx, span := tracing.StartOperationSpan(ctx, "review_session", userID, now)
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		tracing.RecordOperationResult(span, "", 0, 1, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	plan, err := s.plans.FindByUser(ctx, userID)
	if err != nil {
		tracing.RecordOperationResult(span, "", 0, 1, err)
		return nil, fmt.Errorf("failed to load study plan for user %s: %w", userID, err)
	}

	topic, err := s.topics.FindByID(ctx, req.TopicID)
	if err != nil {
		tracing.RecordOperationResult(span, plan.ID, 0, 1, err)
		return nil, fmt.Errorf("failed to load topic %s: %w", req.TopicID, err)
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, plan.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire plan %s: %w", plan.ID, err)
		}
		defer unlock()
	}

	tomorrow := s.finder.StartOfDay(now).AddDate(0, 0, 1)
	existing, err := s.taskRepo.FindInRange(ctx, plan.ID, tomorrow, tomorrow.AddDate(0, 0, sweepLastDay))
	if err != nil {
		tracing.RecordOperationResult(span, plan.ID, 0, 1, err)
		return nil, fmt.Errorf("failed to fetch upcoming tasks: %w", err)
	}

	intervals := make([]slot.Interval, 0, len(existing))
	for _, t := range existing {
		intervals = append(intervals, slot.Interval{Start: t.StartTime, End: t.EndTime})
	}

	choice := s.pickSlot(now, intervals)

	metadata := map[string]any{domain.MetadataIsRemediation: true}
	if req.Reason != "" {
		metadata["reason"] = req.Reason
	}
	topicID := topic.ID

	task, err := domain.NewTask(domain.NewTaskParams{
		PlanID:     plan.ID,
		Title:      "Review: " + topic.Name,
		Type:       domain.TaskTypeReview,
		Status:     domain.TaskStatusPending,
		StartTime:  choice.Start,
		Duration:   sessionMinutes,
		TopicID:    &topicID,
		Difficulty: domain.DifficultyMedium,
		Metadata:   metadata,
	})
	if err != nil {
		tracing.RecordOperationResult(span, plan.ID, 0, 1, err)
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		slog.ErrorContext(ctx, "failed to create review task",
			slog.String("plan_id", plan.ID),
			slog.String("topic_id", topic.ID),
			slog.String("error", err.Error()),
		)
		tracing.RecordOperationResult(span, plan.ID, 0, 1, err)
		return nil, fmt.Errorf("failed to create review task: %w", err)
	}

	resp := &Response{Task: toScheduledTask(task), Fallback: choice.Fallback}

	alert, err := s.createAlert(ctx, plan, topic, task)
	if err != nil {
		slog.WarnContext(ctx, "failed to create remediation alert",
			slog.String("task_id", task.ID),
			slog.String("error", err.Error()),
		)
		resp.AlertError = err.Error()
	} else {
		resp.AlertID = alert.ID
	}

	slog.InfoContext(ctx, "review session scheduled",
		slog.String("plan_id", plan.ID),
		slog.String("task_id", task.ID),
		slog.String("topic_id", topic.ID),
		slog.Time("start_time", task.StartTime),
		slog.Bool("fallback", choice.Fallback),
	)

	tracing.RecordSlotResult(span, choice.Start, choice.Fallback)
	tracing.RecordOperationResult(span, plan.ID, 1, 0, nil)

	duration := time.Since(started)
	fallbacks := 0
	if choice.Fallback {
		fallbacks = 1
	}
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordReviewSession(ctx, choice.Fallback)
		s.schedulerMetrics.RecordOperationDuration(ctx, domain.OperationReview.String(), duration)
	}
	s.runLog.Record(ctx, runlog.Entry{
		PlanID:    plan.ID,
		UserID:    userID,
		Operation: domain.OperationReview,
		RanAt:     now,
		Succeeded: 1,
		Fallbacks: fallbacks,
		Duration:  duration,
		Payload:   resp,
	})

	return resp, nil
}

// pickSlot tries tomorrow's preferred hours, then the day after's, then every
// working hour over the next three days. If all of that is booked it returns
// tomorrow at the first working hour regardless of conflicts.
func (s *Service) pickSlot(now time.Time, existing []slot.Interval) slot.Result {
	req := slot.Request{
		Existing:        existing,
		DurationMinutes: sessionMinutes,
		Hours:           s.hours,
		NotBefore:       now,
	}
	today := s.finder.StartOfDay(now)

	for _, offset := range []int{1, 2} {
		if res, ok := s.finder.TryHours(today.AddDate(0, 0, offset), preferredHours, req); ok {
			return res
		}
	}

	sweep := s.hours.Hours()
	for offset := sweepFirstDay; offset <= sweepLastDay; offset++ {
		if res, ok := s.finder.TryHours(today.AddDate(0, 0, offset), sweep, req); ok {
			return res
		}
	}

	tomorrow := today.AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), s.hours.StartHour, 0, 0, 0, tomorrow.Location())
	return slot.Result{
		Start:    start,
		End:      start.Add(sessionMinutes * time.Minute),
		Fallback: true,
	}
}

func (s *Service) createAlert(ctx context.Context, plan *domain.StudyPlan, topic *domain.Topic, task *domain.Task) (*domain.Alert, error) {
	message := fmt.Sprintf("A review session for %s was scheduled at %s", topic.Name, task.StartTime.Format(time.RFC3339))
	alert, err := domain.NewAlert(plan.UserID, plan.ID, domain.AlertTypeRemediation, domain.SeverityMedium, message, map[string]any{
		domain.MetadataScheduledTaskID: task.ID,
		"topicId":                      topic.ID,
	})
	if err != nil {
		return nil, err
	}
	taskID := task.ID
	alert.RelatedTaskID = &taskID

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordAlertCreated(ctx, string(alert.Type))
	}
	return alert, nil
}

func toScheduledTask(t *domain.Task) ScheduledTask {
	return ScheduledTask{
		ID:         t.ID,
		PlanID:     t.PlanID,
		Title:      t.Title,
		Type:       t.Type.String(),
		Status:     t.Status.String(),
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		Duration:   t.Duration,
		TopicID:    t.TopicKey(),
		Difficulty: t.Difficulty,
		Metadata:   t.Metadata,
	}
}
