package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RFQStatus is the review state of a request for quotation.
type RFQStatus string

const (
	StatusPending  RFQStatus = "pending"
	StatusAccepted RFQStatus = "accepted"
	StatusRejected RFQStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s RFQStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// RFQ is a client-submitted request for quotation.
//
// SubmittedBy links the record to the submitting account when the submission
// carried a valid token; anonymous submissions are matched by email instead.
type RFQ struct {
	ID                 uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	CompanyName        string           `json:"companyName" gorm:"size:255;not null"`
	Name               string           `json:"name" gorm:"size:255;not null"`
	Email              string           `json:"email" gorm:"size:255;not null;index"`
	PhoneNumber        string           `json:"phoneNumber" gorm:"size:50;not null"`
	ServiceRequired    string           `json:"serviceRequired" gorm:"size:255;not null"`
	ProjectDescription string           `json:"projectDescription" gorm:"type:text;not null"`
	File               string           `json:"file,omitempty" gorm:"size:512"`
	EstimatedBudget    *decimal.Decimal `json:"estimatedBudget,omitempty" gorm:"type:decimal(14,2)"`
	Deadline           time.Time        `json:"deadline" gorm:"not null"`
	AdditionalNotes    string           `json:"additionalNotes,omitempty" gorm:"type:text"`

	Status      RFQStatus  `json:"status" gorm:"size:20;not null;default:'pending';index"`
	SubmittedBy *uuid.UUID `json:"submittedBy,omitempty" gorm:"type:char(36);index"`
	AssignedTo  *uuid.UUID `json:"assignedTo,omitempty" gorm:"type:char(36);index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *RFQ) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
