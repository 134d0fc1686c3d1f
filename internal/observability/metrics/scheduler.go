package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "scheduler.service"
)

type SchedulerMetrics struct {
	tasksRescheduled  metric.Int64Counter
	duplicatesDeleted metric.Int64Counter
	alertsResolved    metric.Int64Counter
	alertsCreated     metric.Int64Counter
	reviewSessions    metric.Int64Counter
	operationDuration metric.Float64Histogram
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	tasksRescheduled, err := meter.Int64Counter(
		"scheduler_missed_tasks_total",
		metric.WithDescription("Missed tasks handled by the rescheduler"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	duplicatesDeleted, err := meter.Int64Counter(
		"scheduler_duplicates_deleted_total",
		metric.WithDescription("Duplicate tasks deleted by the cleaner"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	alertsResolved, err := meter.Int64Counter(
		"scheduler_alerts_resolved_total",
		metric.WithDescription("Alerts resolved after their task was deleted"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, err
	}

	alertsCreated, err := meter.Int64Counter(
		"scheduler_alerts_created_total",
		metric.WithDescription("Alerts created by scheduling operations"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, err
	}

	reviewSessions, err := meter.Int64Counter(
		"scheduler_review_sessions_total",
		metric.WithDescription("Review sessions scheduled"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram(
		"scheduler_operation_duration_seconds",
		metric.WithDescription("Duration of scheduling operations"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		tasksRescheduled:  tasksRescheduled,
		duplicatesDeleted: duplicatesDeleted,
		alertsResolved:    alertsResolved,
		alertsCreated:     alertsCreated,
		reviewSessions:    reviewSessions,
		operationDuration: operationDuration,
	}, nil
}

func (m *SchedulerMetrics) RecordMissedTask(ctx context.Context, outcome string) {
	m.tasksRescheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordDuplicateDeleted(ctx context.Context, pass string) {
	m.duplicatesDeleted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pass", pass),
	))
}

func (m *SchedulerMetrics) RecordAlertsResolved(ctx context.Context, count int) {
	m.alertsResolved.Add(ctx, int64(count))
}

func (m *SchedulerMetrics) RecordAlertCreated(ctx context.Context, alertType string) {
	m.alertsCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", alertType),
	))
}

func (m *SchedulerMetrics) RecordReviewSession(ctx context.Context, fallback bool) {
	m.reviewSessions.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("fallback", fallback),
	))
}

func (m *SchedulerMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
