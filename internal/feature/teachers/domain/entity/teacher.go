// Package entity defines the domain entities for the teachers feature.
package entity

import "school_backend/internal/shared/record"

// Teacher is a staff account. Teachers also sign in to the admin side of the
// application with their email and password.
type Teacher struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// Email is unique among Active teachers.
	Email string `gorm:"size:255;not null;index"`

	// Password is the bcrypt hash of the teacher's password.
	Password string `gorm:"size:255;not null"`

	PhoneNumber *string `gorm:"size:20"`
	ClassID     *uint   `gorm:"index"`

	Status record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')"`
}

// TableName returns the table name for GORM.
func (Teacher) TableName() string {
	return "teachers"
}

// FullName joins the first and last name.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
