// Package entity defines the domain entities for the students feature.
package entity

import (
	"time"

	"school_backend/internal/shared/record"
)

// Student is an enrolled pupil. Students sign in with their student code and
// date of birth.
type Student struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// Code is the external identifier printed on the student card. It is
	// unique among Active students.
	Code string `gorm:"column:student_code;size:50;not null;index"`

	DOB        time.Time `gorm:"column:dob;type:date;not null"`
	ClassID    uint      `gorm:"not null;index"`
	DateOfJoin time.Time `gorm:"type:date;not null"`
	TeacherID  uint      `gorm:"not null;index"`

	Status record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')"`
}

// TableName returns the table name for GORM.
func (Student) TableName() string {
	return "students"
}

// FullName joins the first and last name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
