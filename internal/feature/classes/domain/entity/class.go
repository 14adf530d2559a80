// Package entity defines the domain model for the classes feature.
package entity

import "school_backend/internal/shared/record"

// Class is a grade level. Teachers, students and results reference it by ID.
type Class struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Label is the integer grade level. It is unique among Active classes.
	Label int `gorm:"column:class;not null;index" json:"class"`

	Status record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')" json:"record_status"`
}

// TableName returns the table name for GORM.
func (Class) TableName() string {
	return "classes"
}
