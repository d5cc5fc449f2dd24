package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is a feed entry shown to an employee, recorded when work lands on
// their desk (currently: an accepted RFQ is assigned to them).
type Activity struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	EmployeeID  uuid.UUID `json:"employeeId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
