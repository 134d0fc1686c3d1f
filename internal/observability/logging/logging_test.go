package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewLogger_ProdWritesJSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Service:       ServiceInfo{Name: "study-scheduler", Version: "test"},
		Environment:   EnvProd,
		Level:         slog.LevelInfo,
		DefaultModule: Module("scheduler"),
		Output:        &buf,
	})

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello", slog.String("plan_id", "plan-1"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	want := map[string]string{
		"msg":        "hello",
		"service":    "study-scheduler",
		"module":     "scheduler",
		"request_id": "req-1",
		"plan_id":    "plan-1",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %q", k, entry[k], v)
		}
	}
}

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := "3f1c8a52-8a8a-4c7e-9b0e-1a2b3c4d5e6f"
	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("got %q, want %q", got, valid)
	}
	if got := ValidateAndExtractRequestID("not-a-uuid"); got == "not-a-uuid" || got == "" {
		t.Errorf("expected generated id, got %q", got)
	}
}
