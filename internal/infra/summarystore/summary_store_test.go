package summarystore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-study-scheduler/internal/testutil"
)

func TestSaveAndGetSummary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewSummaryStore(client, "", time.Hour)
	ranAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	summary := &domain.RunSummary{
		PlanID:    "plan-1",
		UserID:    "user-1",
		Operation: domain.OperationReschedule,
		RanAt:     ranAt,
		Succeeded: 3,
		Failed:    1,
		Payload:   json.RawMessage(`{"rescheduled_count":3}`),
	}

	for i := 0; i < 2; i++ {
		if err := store.SaveSummary(ctx, summary); err != nil {
			t.Fatalf("SaveSummary() error = %v", err)
		}
	}

	got, err := store.GetSummary(ctx, "plan-1", domain.OperationReschedule)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if got.Succeeded != 3 || got.Failed != 1 {
		t.Errorf("counts = %d/%d, want 3/1", got.Succeeded, got.Failed)
	}
	if !got.RanAt.Equal(ranAt) {
		t.Errorf("RanAt = %v, want %v", got.RanAt, ranAt)
	}
	if got.RunCount != 2 {
		t.Errorf("RunCount = %d, want 2", got.RunCount)
	}
	if string(got.Payload) != `{"rescheduled_count":3}` {
		t.Errorf("Payload = %s", got.Payload)
	}

	ttl, err := client.TTL(ctx, "scheduler:summary:plan-1:"+domain.OperationReschedule.String()).Result()
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl = %v, want within (0, 1h]", ttl)
	}
}

func TestGetSummaryNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewSummaryStore(client, "", 0)

	_, err := store.GetSummary(ctx, "plan-1", domain.OperationCleanup)
	if !errors.Is(err, domain.ErrSummaryNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrSummaryNotFound)
	}
}

func TestSummaryKeyPrefixIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	staging := NewSummaryStore(client, "staging", 0)
	prod := NewSummaryStore(client, "prod", 0)

	summary := &domain.RunSummary{PlanID: "plan-1", Operation: domain.OperationCleanup, Succeeded: 2}
	if err := staging.SaveSummary(ctx, summary); err != nil {
		t.Fatalf("SaveSummary() error = %v", err)
	}

	if _, err := prod.GetSummary(ctx, "plan-1", domain.OperationCleanup); !errors.Is(err, domain.ErrSummaryNotFound) {
		t.Errorf("prod GetSummary() error = %v, want %v", err, domain.ErrSummaryNotFound)
	}

	exists, err := client.Exists(ctx, "staging:summary:plan-1:"+domain.OperationCleanup.String()).Result()
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists != 1 {
		t.Errorf("staging key exists = %d, want 1", exists)
	}
}

func TestSaveSummaryInvalid(t *testing.T) {
	store := NewSummaryStore(nil, "", 0)

	tests := []struct {
		name    string
		summary *domain.RunSummary
	}{
		{name: "nil summary", summary: nil},
		{name: "missing plan", summary: &domain.RunSummary{Operation: domain.OperationReview}},
		{name: "unknown operation", summary: &domain.RunSummary{PlanID: "plan-1", Operation: "rebuild"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveSummary(context.Background(), tt.summary)
			if !errors.Is(err, ErrInvalidSummaryData) {
				t.Errorf("error = %v, want %v", err, ErrInvalidSummaryData)
			}
		})
	}
}
