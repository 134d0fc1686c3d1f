package runlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

// Log persists run summaries and emits run records. Failures are logged and
// never returned, so a broken store cannot fail a scheduling call.
type Log struct {
	store    domain.RunSummaryStore
	recorder domain.RunRecorder
}

func New(store domain.RunSummaryStore, recorder domain.RunRecorder) *Log {
	return &Log{store: store, recorder: recorder}
}

type Entry struct {
	PlanID    string
	UserID    string
	Operation domain.Operation
	RanAt     time.Time
	Succeeded int
	Failed    int
	Fallbacks int
	Duration  time.Duration
	Payload   any
}

func (l *Log) Record(ctx context.Context, e Entry) {
	if l == nil {
		return
	}

	if l.store != nil {
		summary := &domain.RunSummary{
			PlanID:    e.PlanID,
			UserID:    e.UserID,
			Operation: e.Operation,
			RanAt:     e.RanAt,
			Succeeded: e.Succeeded,
			Failed:    e.Failed,
		}
		if e.Payload != nil {
			payload, err := json.Marshal(e.Payload)
			if err != nil {
				slog.WarnContext(ctx, "failed to encode run summary payload",
					slog.String("operation", e.Operation.String()),
					slog.String("error", err.Error()),
				)
			} else {
				summary.Payload = payload
			}
		}
		if err := l.store.SaveSummary(ctx, summary); err != nil {
			slog.WarnContext(ctx, "failed to save run summary",
				slog.String("plan_id", e.PlanID),
				slog.String("operation", e.Operation.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if l.recorder != nil {
		err := l.recorder.RecordRun(ctx, domain.RunRecord{
			PlanID:    e.PlanID,
			Operation: e.Operation,
			RanAt:     e.RanAt,
			Succeeded: e.Succeeded,
			Failed:    e.Failed,
			Fallbacks: e.Fallbacks,
			Duration:  e.Duration,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to record run",
				slog.String("plan_id", e.PlanID),
				slog.String("operation", e.Operation.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Last returns the most recent summary for the plan and operation.
func (l *Log) Last(ctx context.Context, planID string, op domain.Operation) (*domain.RunSummary, error) {
	if l == nil || l.store == nil {
		return nil, domain.ErrSummaryNotFound
	}
	return l.store.GetSummary(ctx, planID, op)
}
