package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rfqdesk/internal/model"
)

// RFQRepository defines RFQ persistence operations.
type RFQRepository interface {
	Create(ctx context.Context, rfq *model.RFQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error)
	ListAll(ctx context.Context) ([]model.RFQ, error)
	ListBySubmitter(ctx context.Context, userID uuid.UUID, email string) ([]model.RFQ, error)
	ListAssigned(ctx context.Context, employeeID uuid.UUID) ([]model.RFQ, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RFQStatus, employeeID *uuid.UUID) (*model.RFQ, error)
}

type rfqRepository struct {
	db *gorm.DB
}

// NewRFQRepository creates a new RFQ repository.
func NewRFQRepository(db *gorm.DB) RFQRepository {
	return &rfqRepository{db: db}
}

// Create creates a new RFQ.
func (r *rfqRepository) Create(ctx context.Context, rfq *model.RFQ) error {
	return r.db.WithContext(ctx).Create(rfq).Error
}

// FindByID finds an RFQ by ID.
func (r *rfqRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error) {
	var rfq model.RFQ
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rfq).Error; err != nil {
		return nil, err
	}
	return &rfq, nil
}

// ListAll lists every RFQ, newest first.
func (r *rfqRepository) ListAll(ctx context.Context) ([]model.RFQ, error) {
	var rfqs []model.RFQ
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rfqs).Error; err != nil {
		return nil, err
	}
	return rfqs, nil
}

// ListBySubmitter lists RFQs linked to the submitter's account, falling back
// to email match for submissions made before the account existed or without
// a token.
func (r *rfqRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID, email string) ([]model.RFQ, error) {
	var rfqs []model.RFQ
	if err := r.db.WithContext(ctx).
		Where("submitted_by = ? OR email = ?", userID, email).
		Order("created_at DESC").
		Find(&rfqs).Error; err != nil {
		return nil, err
	}
	return rfqs, nil
}

// ListAssigned lists accepted RFQs assigned to the given employee.
func (r *rfqRepository) ListAssigned(ctx context.Context, employeeID uuid.UUID) ([]model.RFQ, error) {
	var rfqs []model.RFQ
	if err := r.db.WithContext(ctx).
		Where("status = ? AND assigned_to = ?", model.StatusAccepted, employeeID).
		Order("created_at DESC").
		Find(&rfqs).Error; err != nil {
		return nil, err
	}
	return rfqs, nil
}

// UpdateStatus sets the status, and the assignment when employeeID is given,
// in a single UPDATE so the two always change together. Returns the updated
// record, or gorm.ErrRecordNotFound when id matches nothing.
func (r *rfqRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RFQStatus, employeeID *uuid.UUID) (*model.RFQ, error) {
	fields := map[string]interface{}{"status": status}
	if employeeID != nil {
		fields["assigned_to"] = *employeeID
	}

	res := r.db.WithContext(ctx).Model(&model.RFQ{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}
