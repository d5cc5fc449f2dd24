package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rfqdesk/internal/errors"
	"rfqdesk/internal/model"
	"rfqdesk/internal/repository"
)

// RFQService handles the RFQ lifecycle: submission, role-scoped listing, and
// the admin-only status/assignment update.
type RFQService interface {
	Submit(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error)
	ListForClient(ctx context.Context, userID uuid.UUID, email string) ([]model.RFQ, error)
	ListAll(ctx context.Context) ([]model.RFQ, error)
	ListAssigned(ctx context.Context, employeeID uuid.UUID) ([]model.RFQ, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RFQStatus, employeeID *uuid.UUID) (*model.RFQ, error)
}

type rfqService struct {
	rfqRepo      repository.RFQRepository
	activityRepo repository.ActivityRepository
}

// NewRFQService creates a new RFQ service.
func NewRFQService(rfqRepo repository.RFQRepository, activityRepo repository.ActivityRepository) RFQService {
	return &rfqService{
		rfqRepo:      rfqRepo,
		activityRepo: activityRepo,
	}
}

// Submit stores a new RFQ. The initial status is always pending, regardless
// of what the submission carried.
func (s *rfqService) Submit(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error) {
	rfq.Status = model.StatusPending
	rfq.AssignedTo = nil

	if err := s.rfqRepo.Create(ctx, rfq); err != nil {
		return nil, fmt.Errorf("create rfq: %w", err)
	}
	return rfq, nil
}

// ListForClient returns the caller's own submissions.
func (s *rfqService) ListForClient(ctx context.Context, userID uuid.UUID, email string) ([]model.RFQ, error) {
	return s.rfqRepo.ListBySubmitter(ctx, userID, email)
}

// ListAll returns every RFQ, newest first.
func (s *rfqService) ListAll(ctx context.Context) ([]model.RFQ, error) {
	return s.rfqRepo.ListAll(ctx)
}

// ListAssigned returns accepted RFQs assigned to the employee.
func (s *rfqService) ListAssigned(ctx context.Context, employeeID uuid.UUID) ([]model.RFQ, error) {
	return s.rfqRepo.ListAssigned(ctx, employeeID)
}

// UpdateStatus transitions an RFQ and, when an employee id accompanies an
// acceptance, records the assignment atomically with the status change.
// Any status may be set from any other status; re-applying the current
// status is a no-op update.
func (s *rfqService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RFQStatus, employeeID *uuid.UUID) (*model.RFQ, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	// Assignment only travels with an acceptance.
	if status != model.StatusAccepted {
		employeeID = nil
	}

	rfq, err := s.rfqRepo.UpdateStatus(ctx, id, status, employeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRFQNotFound
		}
		return nil, fmt.Errorf("update rfq status: %w", err)
	}

	if employeeID != nil {
		activity := &model.Activity{
			Title:       "RFQ assigned",
			Description: fmt.Sprintf("%s: %s", rfq.CompanyName, rfq.ServiceRequired),
			EmployeeID:  *employeeID,
		}
		// Feed entries are best effort; the status update already landed.
		if err := s.activityRepo.Create(ctx, activity); err != nil {
			log.Printf("record assignment activity for rfq %s: %v", rfq.ID, err)
		}
	}

	return rfq, nil
}
