package service

import (
	"context"

	"github.com/google/uuid"

	"rfqdesk/internal/model"
	"rfqdesk/internal/repository"
)

// ActivityService exposes the employee activity feed.
type ActivityService interface {
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Activity, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Activity, error) {
	return s.activityRepo.ListByEmployee(ctx, employeeID)
}
