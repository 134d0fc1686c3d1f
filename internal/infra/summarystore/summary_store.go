package summarystore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

const (
	DefaultKeyPrefix = "scheduler"
	DefaultTTL       = 24 * time.Hour
)

type summaryRecord struct {
	PlanID    string          `json:"plan_id"`
	UserID    string          `json:"user_id"`
	Operation string          `json:"operation"`
	RanAt     time.Time       `json:"ran_at"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type summaryStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSummaryStore keeps the latest summary per plan and operation for ttl
// under keys starting with prefix.
func NewSummaryStore(client *redis.Client, prefix string, ttl time.Duration) domain.RunSummaryStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &summaryStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *summaryStore) summaryKey(planID string, op domain.Operation) string {
	return s.prefix + ":summary:" + planID + ":" + op.String()
}

func (s *summaryStore) runCountKey(planID string, op domain.Operation) string {
	return s.prefix + ":runs:" + planID + ":" + op.String()
}

func (s *summaryStore) SaveSummary(ctx context.Context, summary *domain.RunSummary) error {
	if summary == nil || summary.PlanID == "" || !summary.Operation.Valid() {
		return ErrInvalidSummaryData
	}

	record := summaryRecord{
		PlanID:    summary.PlanID,
		UserID:    summary.UserID,
		Operation: summary.Operation.String(),
		RanAt:     summary.RanAt,
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
		Payload:   summary.Payload,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidSummaryData
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.summaryKey(summary.PlanID, summary.Operation), data, s.ttl)
	countKey := s.runCountKey(summary.PlanID, summary.Operation)
	pipe.Incr(ctx, countKey)
	pipe.Expire(ctx, countKey, s.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (s *summaryStore) GetSummary(ctx context.Context, planID string, op domain.Operation) (*domain.RunSummary, error) {
	data, err := s.client.Get(ctx, s.summaryKey(planID, op)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSummaryNotFound
		}
		return nil, err
	}

	var record summaryRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSummaryData
	}

	count, err := s.client.Get(ctx, s.runCountKey(planID, op)).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	return &domain.RunSummary{
		PlanID:    record.PlanID,
		UserID:    record.UserID,
		Operation: domain.Operation(record.Operation),
		RanAt:     record.RanAt,
		Succeeded: record.Succeeded,
		Failed:    record.Failed,
		Payload:   record.Payload,
		RunCount:  count,
	}, nil
}
