// Package entity defines the domain entities for the users feature.
package entity

import (
	"time"

	"school_backend/internal/shared/record"
)

// DefaultRole is assigned when a user is created without a role.
const DefaultRole = "user"

// User represents an administrative account of the school application.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// Email is unique among Active users. Deactivated accounts release it.
	Email string `gorm:"index;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	Role string `gorm:"size:50;not null;default:user"`

	Status record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
