// Package dto defines data transfer objects for the classes HTTP API.
package dto

import "school_backend/internal/feature/classes/domain/entity"

// ClassReq is the body of create and update requests. Class is a pointer so
// that label 0 is accepted while a missing field is not.
type ClassReq struct {
	Class *int `json:"class" binding:"required"`
}

// ClassRes is a class in API responses.
type ClassRes struct {
	ID           uint   `json:"id"`
	Class        int    `json:"class"`
	RecordStatus string `json:"record_status"`
}

// ClassMessageRes confirms a write and echoes the stored class.
type ClassMessageRes struct {
	Message string   `json:"message"`
	Class   ClassRes `json:"class"`
}

// FromEntity converts a domain class to its response form.
func FromEntity(c *entity.Class) ClassRes {
	return ClassRes{ID: c.ID, Class: c.Label, RecordStatus: string(c.Status)}
}
