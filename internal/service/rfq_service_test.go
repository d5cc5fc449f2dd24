package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rfqdesk/internal/errors"
	"rfqdesk/internal/model"
)

// MockRFQRepository is a mock implementation of RFQRepository.
type MockRFQRepository struct {
	mock.Mock
}

func (m *MockRFQRepository) Create(ctx context.Context, rfq *model.RFQ) error {
	args := m.Called(ctx, rfq)
	return args.Error(0)
}

func (m *MockRFQRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) ListAll(ctx context.Context) ([]model.RFQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID, email string) ([]model.RFQ, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) ListAssigned(ctx context.Context, employeeID uuid.UUID) ([]model.RFQ, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RFQStatus, employeeID *uuid.UUID) (*model.RFQ, error) {
	args := m.Called(ctx, id, status, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Activity, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func newTestRFQ() *model.RFQ {
	return &model.RFQ{
		CompanyName:        "Acme",
		Name:               "Jane",
		Email:              "jane@acme.com",
		PhoneNumber:        "5551234567",
		ServiceRequired:    "Welding",
		ProjectDescription: "Custom bracket",
		Deadline:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRFQService_Submit(t *testing.T) {
	mockRepo := new(MockRFQRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.RFQ")).Return(nil)

	svc := NewRFQService(mockRepo, new(MockActivityRepository))

	// Even a submission claiming another status lands as pending.
	rfq := newTestRFQ()
	rfq.Status = model.StatusAccepted
	employee := uuid.New()
	rfq.AssignedTo = &employee

	created, err := svc.Submit(context.Background(), rfq)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Nil(t, created.AssignedTo)
	mockRepo.AssertExpectations(t)
}

func TestRFQService_UpdateStatus(t *testing.T) {
	rfqID := uuid.New()
	employeeID := uuid.New()

	tests := []struct {
		name          string
		status        model.RFQStatus
		employeeID    *uuid.UUID
		setupMock     func(*MockRFQRepository, *MockActivityRepository)
		expectedError error
	}{
		{
			name:       "accept with assignment records activity",
			status:     model.StatusAccepted,
			employeeID: &employeeID,
			setupMock: func(mRepo *MockRFQRepository, mAct *MockActivityRepository) {
				updated := newTestRFQ()
				updated.ID = rfqID
				updated.Status = model.StatusAccepted
				updated.AssignedTo = &employeeID
				mRepo.On("UpdateStatus", mock.Anything, rfqID, model.StatusAccepted, &employeeID).Return(updated, nil)
				mAct.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.EmployeeID == employeeID
				})).Return(nil)
			},
		},
		{
			name:       "rejection drops the assignment parameter",
			status:     model.StatusRejected,
			employeeID: &employeeID,
			setupMock: func(mRepo *MockRFQRepository, mAct *MockActivityRepository) {
				updated := newTestRFQ()
				updated.ID = rfqID
				updated.Status = model.StatusRejected
				mRepo.On("UpdateStatus", mock.Anything, rfqID, model.StatusRejected, (*uuid.UUID)(nil)).Return(updated, nil)
			},
		},
		{
			name:       "backward transition is permitted",
			status:     model.StatusPending,
			employeeID: nil,
			setupMock: func(mRepo *MockRFQRepository, mAct *MockActivityRepository) {
				updated := newTestRFQ()
				updated.ID = rfqID
				updated.Status = model.StatusPending
				mRepo.On("UpdateStatus", mock.Anything, rfqID, model.StatusPending, (*uuid.UUID)(nil)).Return(updated, nil)
			},
		},
		{
			name:          "unknown status",
			status:        model.RFQStatus("archived"),
			setupMock:     func(mRepo *MockRFQRepository, mAct *MockActivityRepository) {},
			expectedError: errors.ErrInvalidStatus,
		},
		{
			name:   "unknown id",
			status: model.StatusAccepted,
			setupMock: func(mRepo *MockRFQRepository, mAct *MockActivityRepository) {
				mRepo.On("UpdateStatus", mock.Anything, rfqID, model.StatusAccepted, (*uuid.UUID)(nil)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRFQNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRFQRepository)
			mockAct := new(MockActivityRepository)
			tt.setupMock(mockRepo, mockAct)

			svc := NewRFQService(mockRepo, mockAct)
			rfq, err := svc.UpdateStatus(context.Background(), rfqID, tt.status, tt.employeeID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, rfq)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, rfq.Status)
			}

			mockRepo.AssertExpectations(t)
			mockAct.AssertExpectations(t)
		})
	}
}

func TestRFQService_ListAssigned(t *testing.T) {
	employeeID := uuid.New()
	assigned := newTestRFQ()
	assigned.Status = model.StatusAccepted
	assigned.AssignedTo = &employeeID

	mockRepo := new(MockRFQRepository)
	mockRepo.On("ListAssigned", mock.Anything, employeeID).Return([]model.RFQ{*assigned}, nil)

	svc := NewRFQService(mockRepo, new(MockActivityRepository))
	rfqs, err := svc.ListAssigned(context.Background(), employeeID)

	assert.NoError(t, err)
	assert.Len(t, rfqs, 1)
	assert.Equal(t, employeeID, *rfqs[0].AssignedTo)
	mockRepo.AssertExpectations(t)
}
