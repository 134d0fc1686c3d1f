package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTypeScheduleChange AlertType = "SCHEDULE_CHANGE"
	AlertTypeRemediation    AlertType = "REMEDIATION"
	AlertTypePerformance    AlertType = "PERFORMANCE"
	AlertTypeMilestone      AlertType = "MILESTONE"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeScheduleChange, AlertTypeRemediation, AlertTypePerformance, AlertTypeMilestone:
		return true
	}
	return false
}

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "LOW"
	SeverityMedium AlertSeverity = "MEDIUM"
	SeverityHigh   AlertSeverity = "HIGH"
)

func (s AlertSeverity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// MetadataScheduledTaskID links an alert to the task it announced.
const MetadataScheduledTaskID = "scheduledTaskId"

// Alert is a user-facing notice about a change to the study calendar.
// Alerts are resolved, never deleted.
type Alert struct {
	ID            string
	UserID        string
	PlanID        string
	Type          AlertType
	Severity      AlertSeverity
	Message       string
	RelatedTaskID *string
	Metadata      map[string]any
	IsResolved    bool
	ResolvedAt    *time.Time
	CreatedAt     time.Time
}

func NewAlert(userID, planID string, alertType AlertType, severity AlertSeverity, message string, metadata map[string]any) (*Alert, error) {
	if userID == "" || planID == "" {
		return nil, fmt.Errorf("%w: user and plan are required", ErrInvalidAlert)
	}
	if !alertType.Valid() {
		return nil, fmt.Errorf("%w: invalid type %q", ErrInvalidAlert, alertType)
	}
	if !severity.Valid() {
		return nil, fmt.Errorf("%w: invalid severity %q", ErrInvalidAlert, severity)
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &Alert{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanID:    planID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ScheduledTaskID returns metadata.scheduledTaskId, or "" when absent.
func (a *Alert) ScheduledTaskID() string {
	v, _ := a.Metadata[MetadataScheduledTaskID].(string)
	return v
}

// Resolve marks the alert resolved. It reports false when the alert was already resolved.
func (a *Alert) Resolve(now time.Time) bool {
	if a.IsResolved {
		return false
	}
	resolvedAt := now
	a.IsResolved = true
	a.ResolvedAt = &resolvedAt
	return true
}
