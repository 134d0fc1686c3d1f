package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) domain.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	if alert == nil || alert.ID == "" {
		return ErrInvalidAlertData
	}

	row := toAlertModel(alert)
	return r.db.WithContext(ctx).Create(&row).Error
}

// FindByScheduledTask matches on the scheduledTaskId metadata key.
func (r *alertRepository) FindByScheduledTask(ctx context.Context, taskID string) ([]*domain.Alert, error) {
	var rows []alertModel
	err := r.db.WithContext(ctx).
		Where("metadata ->> ? = ?", domain.MetadataScheduledTaskID, taskID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	alerts := make([]*domain.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, row.toDomain())
	}
	return alerts, nil
}

func (r *alertRepository) Save(ctx context.Context, alert *domain.Alert) error {
	if alert == nil || alert.ID == "" {
		return ErrInvalidAlertData
	}

	result := r.db.WithContext(ctx).Model(&alertModel{}).Where("id = ?", alert.ID).Updates(map[string]any{
		"message":     alert.Message,
		"is_resolved": alert.IsResolved,
		"resolved_at": alert.ResolvedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}
