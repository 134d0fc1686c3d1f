package domain

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -source=run_summary.go -destination=run_summary_mock.go -package=domain

// Operation names the orchestrator that produced a run.
type Operation string

const (
	OperationReschedule Operation = "reschedule-missed"
	OperationCleanup    Operation = "cleanup-duplicates"
	OperationReview     Operation = "review-session"
)

func (o Operation) Valid() bool {
	return o == OperationReschedule || o == OperationCleanup || o == OperationReview
}

func (o Operation) String() string {
	return string(o)
}

// RunSummary is the persisted outcome of one orchestrator run.
type RunSummary struct {
	PlanID    string          `json:"plan_id"`
	UserID    string          `json:"user_id"`
	Operation Operation       `json:"operation"`
	RanAt     time.Time       `json:"ran_at"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	RunCount  int             `json:"run_count"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type RunSummaryStore interface {
	SaveSummary(ctx context.Context, summary *RunSummary) error
	GetSummary(ctx context.Context, planID string, op Operation) (*RunSummary, error)
}

// RunRecord is a single measurement point emitted per run.
type RunRecord struct {
	PlanID    string
	Operation Operation
	RanAt     time.Time
	Succeeded int
	Failed    int
	Fallbacks int
	Duration  time.Duration
}

type RunRecorder interface {
	RecordRun(ctx context.Context, record RunRecord) error
	Close() error
}
