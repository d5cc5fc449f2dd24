package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rfqdesk/internal/model"
)

const activityFeedLimit = 20

// ActivityRepository defines activity-feed persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByEmployee returns the employee's most recent activities, newest first.
func (r *activityRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(activityFeedLimit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
