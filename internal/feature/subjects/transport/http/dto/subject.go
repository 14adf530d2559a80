// Package dto defines data transfer objects for the subjects HTTP API.
package dto

import "school_backend/internal/feature/subjects/domain/entity"

// SubjectReq is the body of create and update requests.
type SubjectReq struct {
	SubjectName string `json:"subject_name" binding:"required,max=100"`
}

// SubjectRes is a subject in API responses.
type SubjectRes struct {
	ID           uint   `json:"id"`
	SubjectName  string `json:"subject_name"`
	RecordStatus string `json:"record_status"`
}

// SubjectMessageRes confirms a write and echoes the stored subject.
type SubjectMessageRes struct {
	Message string     `json:"message"`
	Subject SubjectRes `json:"subject"`
}

// FromEntity converts a domain subject to its response form.
func FromEntity(s *entity.Subject) SubjectRes {
	return SubjectRes{ID: s.ID, SubjectName: s.Name, RecordStatus: string(s.Status)}
}
