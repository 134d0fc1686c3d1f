package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserReader {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var row userModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	days, err := domain.ParseWeekdays(row.AvailableDays)
	if err != nil {
		// Unknown names are dropped so one bad entry cannot block scheduling.
		slog.WarnContext(ctx, "ignoring invalid available days",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		days = validWeekdays(row.AvailableDays)
	}

	return &domain.User{
		ID:   row.ID,
		Name: row.Name,
		Preferences: domain.UserPreferences{
			AvailableDays:      days,
			StudyHoursPerDay:   row.StudyHoursPerDay,
			PreferredStudyTime: domain.PreferredStudyTime(row.PreferredStudyTime),
		},
	}, nil
}

func validWeekdays(names []string) []time.Weekday {
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		if d, err := domain.ParseWeekday(n); err == nil {
			out = append(out, d)
		}
	}
	return out
}

type studyPlanRepository struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) domain.StudyPlanReader {
	return &studyPlanRepository{db: db}
}

func (r *studyPlanRepository) FindByUser(ctx context.Context, userID string) (*domain.StudyPlan, error) {
	var row studyPlanModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}

	return &domain.StudyPlan{
		ID:        row.ID,
		UserID:    row.UserID,
		ExamDate:  row.ExamDate,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
	}, nil
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) domain.TopicReader {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindByID(ctx context.Context, topicID string) (*domain.Topic, error) {
	var row topicModel
	if err := r.db.WithContext(ctx).Where("id = ?", topicID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, err
	}
	return &domain.Topic{ID: row.ID, Name: row.Name}, nil
}

func (r *topicRepository) FindByIDs(ctx context.Context, topicIDs []string) (map[string]*domain.Topic, error) {
	out := make(map[string]*domain.Topic, len(topicIDs))
	if len(topicIDs) == 0 {
		return out, nil
	}

	var rows []topicModel
	if err := r.db.WithContext(ctx).Where("id IN ?", topicIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = &domain.Topic{ID: row.ID, Name: row.Name}
	}
	return out, nil
}
