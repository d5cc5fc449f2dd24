package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines which operations a token holder may invoke.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// Privileged reports whether sign-in with this role requires the shared access id.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User represents an account holder: an admin, an employee, or a client.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNo      string    `json:"phoneNo" gorm:"uniqueIndex;size:10;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;not null;default:'client';index"`

	// Profile fields, mutable only through the allow-listed profile update.
	Location   string `json:"location" gorm:"size:255;default:'Not provided'"`
	JobTitle   string `json:"jobTitle" gorm:"size:255"`
	Department string `json:"department" gorm:"size:255;default:'Not provided'"`
	Bio        string `json:"bio" gorm:"type:text"`

	// Profile image lives on disk; the record keeps only the reference.
	ImagePath        string `json:"image,omitempty" gorm:"size:512"`
	ImageContentType string `json:"imageContentType,omitempty" gorm:"size:100"`

	JoinDate  time.Time      `json:"joinDate"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID and join date before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.JoinDate.IsZero() {
		u.JoinDate = time.Now()
	}
	return nil
}
