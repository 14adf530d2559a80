// Package entity defines the domain model for the subjects feature.
package entity

import "school_backend/internal/shared/record"

// Subject is a taught subject. Results reference it by ID.
type Subject struct {
	ID     uint          `gorm:"primaryKey" json:"id"`
	Name   string        `gorm:"column:subject_name;size:100;not null" json:"subject_name"`
	Status record.Status `gorm:"column:record_status;size:8;not null;default:Active;index;check:record_status IN ('Active','Inactive')" json:"record_status"`
}

// TableName returns the table name for GORM.
func (Subject) TableName() string {
	return "subjects"
}
