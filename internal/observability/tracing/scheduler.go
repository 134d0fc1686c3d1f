package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/KasumiMercury/primind-study-scheduler/internal/service"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

func StartOperationSpan(ctx context.Context, operation, userID string, now time.Time) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler."+operation,
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("scheduler.now", now.Format(time.RFC3339)),
		),
	)
}

func StartSlotSearchSpan(ctx context.Context, taskID string, candidateDays int) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.slot_search",
		trace.WithAttributes(
			attribute.String("task.id", taskID),
			attribute.Int("slot.candidate_days", candidateDays),
		),
	)
}

func StartDedupPassSpan(ctx context.Context, pass string, snapshotSize int) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.dedup_pass."+pass,
		trace.WithAttributes(
			attribute.Int("dedup.snapshot_size", snapshotSize),
		),
	)
}

func RecordSlotResult(span trace.Span, start time.Time, fallback bool) {
	span.SetAttributes(
		attribute.String("slot.start", start.Format(time.RFC3339)),
		attribute.Bool("slot.fallback", fallback),
	)
}

func RecordOperationResult(span trace.Span, planID string, succeeded, failed int, err error) {
	span.SetAttributes(
		attribute.String("plan.id", planID),
		attribute.Int("operation.succeeded", succeeded),
		attribute.Int("operation.failed", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
