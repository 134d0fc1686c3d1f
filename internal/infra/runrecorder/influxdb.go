package runrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

const measurement = "scheduler_run"

type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI pointWriter
}

// NewRecorder returns an InfluxDB recorder, or a no-op one when recording is
// disabled or credentials are missing.
func NewRecorder(ctx context.Context, cfg *Config) domain.RunRecorder {
	if cfg.Disabled {
		slog.InfoContext(ctx, "run recording disabled")
		return NewNoopRecorder()
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, run recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder()
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "run recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}
}

func newPoint(record domain.RunRecord) *write.Point {
	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"plan_id":   record.PlanID,
			"operation": record.Operation.String(),
		},
		map[string]any{
			"succeeded":   record.Succeeded,
			"failed":      record.Failed,
			"fallbacks":   record.Fallbacks,
			"duration_ms": record.Duration.Milliseconds(),
		},
		record.RanAt,
	)
}

func (r *influxDBRecorder) RecordRun(ctx context.Context, record domain.RunRecord) error {
	if err := r.writeAPI.WritePoint(ctx, newPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write run record to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("plan_id", record.PlanID),
			slog.String("operation", record.Operation.String()),
		)
		return err
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
