// Package entity defines the domain entities for the results feature.
package entity

import (
	"time"

	"school_backend/internal/shared/record"
)

// Result is the mark a student obtained in one subject.
type Result struct {
	ID         uint          `gorm:"primaryKey"`
	StudentID  uint          `gorm:"not null;index"`
	ClassID    uint          `gorm:"not null;index"`
	SubjectID  uint          `gorm:"not null;index"`
	TeacherID  uint          `gorm:"not null;index"`
	Marks      float64       `gorm:"not null"`
	ResultDate time.Time     `gorm:"type:date;not null"`
	Status     record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')"`
}

// TableName returns the table name for GORM.
func (Result) TableName() string {
	return "results"
}

// MarkRow is one Active result joined with its student, class and subject.
type MarkRow struct {
	StudentCode string
	FirstName   string
	LastName    string
	ClassLabel  int
	SubjectName string
	Marks       float64
}

// SubjectMark is one Active result of a single student.
type SubjectMark struct {
	SubjectID   uint
	SubjectName string
	Marks       float64
}

// StudentResults groups a student's marks within one class.
type StudentResults struct {
	StudentName string
	StudentCode string
	ClassLabel  int

	// SubjectsWithMarks is the display string "Subject: marks, Subject: marks"
	// in subject name order.
	SubjectsWithMarks string
	TotalMarks        float64
}

// Report is the per-student result sheet.
type Report struct {
	StudentCode       string
	SubjectsWithMarks map[string]float64
	TotalMarks        float64
}
