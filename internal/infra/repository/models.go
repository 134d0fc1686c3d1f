package repository

import (
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

type userModel struct {
	ID                 string   `gorm:"type:varchar(64);primaryKey"`
	Name               string   `gorm:"type:varchar(255)"`
	AvailableDays      []string `gorm:"type:jsonb;serializer:json"`
	StudyHoursPerDay   float64
	PreferredStudyTime string `gorm:"type:varchar(20)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (userModel) TableName() string { return "users" }

type studyPlanModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	UserID    string `gorm:"type:varchar(64);uniqueIndex"`
	ExamDate  time.Time
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (studyPlanModel) TableName() string { return "study_plans" }

type topicModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (topicModel) TableName() string { return "topics" }

// Seq preserves insertion order, which the duplicate cleaner depends on.
type taskModel struct {
	Seq               int64          `gorm:"autoIncrement;uniqueIndex"`
	ID                string         `gorm:"type:varchar(64);primaryKey"`
	PlanID            string         `gorm:"type:varchar(64);index:idx_tasks_plan_start,priority:1;not null"`
	Title             string         `gorm:"type:varchar(255);not null"`
	Description       string         `gorm:"type:text"`
	Type              string         `gorm:"type:varchar(20);not null"`
	Status            string         `gorm:"type:varchar(20);index;not null"`
	StartTime         time.Time      `gorm:"index:idx_tasks_plan_start,priority:2;not null"`
	EndTime           time.Time      `gorm:"not null"`
	Duration          int            `gorm:"not null"`
	TopicID           *string        `gorm:"type:varchar(64)"`
	Difficulty        string         `gorm:"type:varchar(20)"`
	OriginalStartTime *time.Time
	OriginalEndTime   *time.Time
	Metadata          map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (taskModel) TableName() string { return "tasks" }

type alertModel struct {
	ID            string         `gorm:"type:varchar(64);primaryKey"`
	UserID        string         `gorm:"type:varchar(64);index;not null"`
	PlanID        string         `gorm:"type:varchar(64);index;not null"`
	Type          string         `gorm:"type:varchar(30);not null"`
	Severity      string         `gorm:"type:varchar(10);not null"`
	Message       string         `gorm:"type:text"`
	RelatedTaskID *string        `gorm:"type:varchar(64)"`
	Metadata      map[string]any `gorm:"type:jsonb;serializer:json"`
	IsResolved    bool           `gorm:"not null;default:false"`
	ResolvedAt    *time.Time
	CreatedAt     time.Time
}

func (alertModel) TableName() string { return "alerts" }

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&userModel{}, &studyPlanModel{}, &topicModel{}, &taskModel{}, &alertModel{}}
}

func toTaskModel(t *domain.Task) taskModel {
	return taskModel{
		ID:                t.ID,
		PlanID:            t.PlanID,
		Title:             t.Title,
		Description:       t.Description,
		Type:              t.Type.String(),
		Status:            t.Status.String(),
		StartTime:         t.StartTime,
		EndTime:           t.EndTime,
		Duration:          t.Duration,
		TopicID:           t.TopicID,
		Difficulty:        t.Difficulty,
		OriginalStartTime: t.OriginalStartTime,
		OriginalEndTime:   t.OriginalEndTime,
		Metadata:          t.Metadata,
	}
}

func (m taskModel) toDomain() *domain.Task {
	metadata := m.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &domain.Task{
		ID:                m.ID,
		PlanID:            m.PlanID,
		Title:             m.Title,
		Description:       m.Description,
		Type:              domain.TaskType(m.Type),
		Status:            domain.TaskStatus(m.Status),
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Duration:          m.Duration,
		TopicID:           m.TopicID,
		Difficulty:        m.Difficulty,
		OriginalStartTime: m.OriginalStartTime,
		OriginalEndTime:   m.OriginalEndTime,
		Metadata:          metadata,
	}
}

func toAlertModel(a *domain.Alert) alertModel {
	return alertModel{
		ID:            a.ID,
		UserID:        a.UserID,
		PlanID:        a.PlanID,
		Type:          string(a.Type),
		Severity:      string(a.Severity),
		Message:       a.Message,
		RelatedTaskID: a.RelatedTaskID,
		Metadata:      a.Metadata,
		IsResolved:    a.IsResolved,
		ResolvedAt:    a.ResolvedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func (m alertModel) toDomain() *domain.Alert {
	metadata := m.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &domain.Alert{
		ID:            m.ID,
		UserID:        m.UserID,
		PlanID:        m.PlanID,
		Type:          domain.AlertType(m.Type),
		Severity:      domain.AlertSeverity(m.Severity),
		Message:       m.Message,
		RelatedTaskID: m.RelatedTaskID,
		Metadata:      metadata,
		IsResolved:    m.IsResolved,
		ResolvedAt:    m.ResolvedAt,
		CreatedAt:     m.CreatedAt,
	}
}
