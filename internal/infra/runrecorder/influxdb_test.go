package runrecorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

type captureWriter struct {
	points []*write.Point
	err    error
}

func (w *captureWriter) WritePoint(_ context.Context, point ...*write.Point) error {
	if w.err != nil {
		return w.err
	}
	w.points = append(w.points, point...)
	return nil
}

func TestRecordRunWritesPoint(t *testing.T) {
	w := &captureWriter{}
	r := &influxDBRecorder{writeAPI: w}

	ranAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	err := r.RecordRun(context.Background(), domain.RunRecord{
		PlanID:    "plan-1",
		Operation: domain.OperationCleanup,
		RanAt:     ranAt,
		Succeeded: 4,
		Failed:    1,
		Duration:  1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if len(w.points) != 1 {
		t.Fatalf("points = %d, want 1", len(w.points))
	}

	p := w.points[0]
	if p.Name() != measurement {
		t.Errorf("measurement = %s, want %s", p.Name(), measurement)
	}
	if !p.Time().Equal(ranAt) {
		t.Errorf("time = %v, want %v", p.Time(), ranAt)
	}

	tags := make(map[string]string)
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["operation"] != "cleanup-duplicates" || tags["plan_id"] != "plan-1" {
		t.Errorf("tags = %v", tags)
	}

	fields := make(map[string]any)
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	if fields["duration_ms"] != int64(1500) {
		t.Errorf("duration_ms = %v, want 1500", fields["duration_ms"])
	}
	if fields["succeeded"] != int64(4) {
		t.Errorf("succeeded = %v (%T), want 4", fields["succeeded"], fields["succeeded"])
	}
}

func TestRecordRunReturnsWriteError(t *testing.T) {
	r := &influxDBRecorder{writeAPI: &captureWriter{err: errors.New("unauthorized")}}

	if err := r.RecordRun(context.Background(), domain.RunRecord{PlanID: "plan-1", Operation: domain.OperationReview}); err == nil {
		t.Error("RecordRun() error = nil, want write error")
	}
}

func TestNewRecorderFallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder(context.Background(), tt.cfg)
			if _, ok := r.(*noopRecorder); !ok {
				t.Errorf("NewRecorder() = %T, want *noopRecorder", r)
			}
		})
	}
}
