package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

func (r *taskRepository) find(ctx context.Context, order string, query string, args ...any) ([]*domain.Task, error) {
	var rows []taskModel
	if err := r.db.WithContext(ctx).Where(query, args...).Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

func (r *taskRepository) FindMissed(ctx context.Context, planID string, now time.Time) ([]*domain.Task, error) {
	return r.find(ctx, "end_time ASC, seq ASC",
		"plan_id = ? AND status = ? AND end_time < ?", planID, domain.TaskStatusPending.String(), now)
}

func (r *taskRepository) FindFrom(ctx context.Context, planID string, from time.Time) ([]*domain.Task, error) {
	return r.find(ctx, "start_time ASC, seq ASC",
		"plan_id = ? AND start_time >= ?", planID, from)
}

func (r *taskRepository) FindInRange(ctx context.Context, planID string, start, end time.Time) ([]*domain.Task, error) {
	return r.find(ctx, "start_time ASC, seq ASC",
		"plan_id = ? AND start_time < ? AND end_time > ?", planID, end, start)
}

func (r *taskRepository) FindPending(ctx context.Context, planID string) ([]*domain.Task, error) {
	return r.find(ctx, "seq ASC",
		"plan_id = ? AND status = ?", planID, domain.TaskStatusPending.String())
}

func (r *taskRepository) UpdateSchedule(ctx context.Context, task *domain.Task) error {
	if task == nil || task.ID == "" {
		return ErrInvalidTaskData
	}

	result := r.db.WithContext(ctx).Model(&taskModel{}).Where("id = ?", task.ID).Updates(map[string]any{
		"start_time":          task.StartTime,
		"end_time":            task.EndTime,
		"original_start_time": task.OriginalStartTime,
		"original_end_time":   task.OriginalEndTime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return ErrInvalidTaskData
	}
	if err := task.Validate(); err != nil {
		return err
	}

	row := toTaskModel(task)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *taskRepository) Delete(ctx context.Context, taskID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", taskID).Delete(&taskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
