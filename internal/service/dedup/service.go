package dedup

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
)

type Service struct {
	plans            domain.StudyPlanReader
	topics           domain.TopicReader
	taskRepo         domain.TaskRepository
	alertRepo        domain.AlertRepository
	locker           *planlock.Locker
	runLog           *runlog.Log
	schedulerMetrics *metrics.SchedulerMetrics
	loc              *time.Location
}

func NewService(
	plans domain.StudyPlanReader,
	topics domain.TopicReader,
	taskRepo domain.TaskRepository,
	alertRepo domain.AlertRepository,
	locker *planlock.Locker,
	runLog *runlog.Log,
	schedulerMetrics *metrics.SchedulerMetrics,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		plans:            plans,
		topics:           topics,
		taskRepo:         taskRepo,
		alertRepo:        alertRepo,
		locker:           locker,
		runLog:           runLog,
		schedulerMetrics: schedulerMetrics,
		loc:              loc,
	}
}

// Cleanup removes duplicate pending sessions from the user's plan.
func (s *Service) Cleanup(ctx context.Context, userID string, now time.Time, dryRun bool) (*Response, error) {
	started := time.Now()
	ctx, span := tracing.StartOperationSpan(ctx, "cleanup_duplicates", userID, now)
	defer span.End()

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

	resp, err := s.CleanupPlan(ctx, plan.ID, now, dryRun)
	if err != nil {
		tracing.RecordOperationResult(span, plan.ID, 0, 0, err)
		return nil, err
	}
	tracing.RecordOperationResult(span, plan.ID, resp.DeletedCount, len(resp.Failed), nil)

	duration := time.Since(started)
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordOperationDuration(ctx, domain.OperationCleanup.String(), duration)
	}
	if !dryRun {
		s.runLog.Record(ctx, runlog.Entry{
			PlanID:    plan.ID,
			UserID:    userID,
			Operation: domain.OperationCleanup,
			RanAt:     now,
			Succeeded: resp.DeletedCount,
			Failed:    len(resp.Failed),
			Duration:  duration,
			Payload:   resp,
		})
	}

	return resp, nil
}

// CleanupPlan runs the three grouping passes over one snapshot of the plan's
// pending tasks, then deletes what they marked and resolves alerts that
// announced the deleted tasks. The caller must hold the plan lock.
func (s *Service) CleanupPlan(ctx context.Context, planID string, now time.Time, dryRun bool) (*Response, error) {
	snapshot, err := s.taskRepo.FindPending(ctx, planID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch pending tasks",
			slog.String("plan_id", planID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to fetch pending tasks: %w", err)
	}

	topics, err := s.resolveTopics(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	cands := newCandidates(snapshot, topics, s.loc)
	m := newMarker()

	passes := []struct {
		pass Pass
		run  func([]candidate) int
	}{
		{PassSameSlot, m.passSameSlot},
		{PassCrossDate, m.passCrossDate},
		{PassExcessive, m.passExcessive},
	}
	for _, p := range passes {
		_, passSpan := tracing.StartDedupPassSpan(ctx, string(p.pass), len(cands))
		n := p.run(cands)
		passSpan.End()

		slog.DebugContext(ctx, "dedup pass complete",
			slog.String("plan_id", planID),
			slog.String("pass", string(p.pass)),
			slog.Int("marked", n),
		)
	}

	resp := &Response{
		PlanID:       planID,
		DeletedTasks: make([]DeletedTask, 0, len(m.marks)),
		Failed:       make([]FailedTask, 0),
		DryRun:       dryRun,
	}

	for _, mk := range m.marks {
		if !dryRun {
			if err := s.taskRepo.Delete(ctx, mk.task.ID); err != nil {
				slog.WarnContext(ctx, "failed to delete duplicate task",
					slog.String("task_id", mk.task.ID),
					slog.String("error", err.Error()),
				)
				resp.Failed = append(resp.Failed, FailedTask{
					ID:     mk.task.ID,
					Title:  mk.task.Title,
					Reason: fmt.Sprintf("failed to delete task: %v", err),
				})
				continue
			}
			if s.schedulerMetrics != nil {
				s.schedulerMetrics.RecordDuplicateDeleted(ctx, string(mk.pass))
			}
			resp.ResolvedAlertCount += s.resolveAlerts(ctx, mk.task.ID, now)
		}

		resp.DeletedTasks = append(resp.DeletedTasks, DeletedTask{
			ID:        mk.task.ID,
			Title:     mk.task.Title,
			TopicName: mk.topicName,
			StartTime: mk.task.StartTime,
			Pass:      mk.pass,
		})
	}

	resp.DeletedCount = len(resp.DeletedTasks)
	resp.TimesSummary = timesSummary(resp.DeletedTasks, s.loc)

	if s.schedulerMetrics != nil && resp.ResolvedAlertCount > 0 {
		s.schedulerMetrics.RecordAlertsResolved(ctx, resp.ResolvedAlertCount)
	}

	slog.InfoContext(ctx, "duplicate cleanup complete",
		slog.String("plan_id", planID),
		slog.Int("snapshot_size", len(snapshot)),
		slog.Int("deleted", resp.DeletedCount),
		slog.Int("failed", len(resp.Failed)),
		slog.Int("resolved_alerts", resp.ResolvedAlertCount),
		slog.Bool("dry_run", dryRun),
	)

	return resp, nil
}

func (s *Service) resolveTopics(ctx context.Context, tasks []*domain.Task) (map[string]*domain.Topic, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, t := range tasks {
		id := t.TopicKey()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[string]*domain.Topic{}, nil
	}

	topics, err := s.topics.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve topics: %w", err)
	}
	return topics, nil
}

// resolveAlerts soft-resolves the open alerts pointing at taskID and returns
// how many were resolved. Failures are logged and skipped.
func (s *Service) resolveAlerts(ctx context.Context, taskID string, now time.Time) int {
	alerts, err := s.alertRepo.FindByScheduledTask(ctx, taskID)
	if err != nil {
		slog.WarnContext(ctx, "failed to look up alerts for deleted task",
			slog.String("task_id", taskID),
			slog.String("error", err.Error()),
		)
		return 0
	}

	resolved := 0
	for _, alert := range alerts {
		if !alert.Resolve(now) {
			continue
		}
		if err := s.alertRepo.Save(ctx, alert); err != nil {
			slog.WarnContext(ctx, "failed to resolve alert",
				slog.String("alert_id", alert.ID),
				slog.String("task_id", taskID),
				slog.String("error", err.Error()),
			)
			continue
		}
		resolved++
	}
	return resolved
}
