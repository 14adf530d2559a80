// Package dto defines data transfer objects for the teachers HTTP API.
package dto

import "school_backend/internal/feature/teachers/domain/entity"

// CreateTeacherReq is the body of POST /teachers.
type CreateTeacherReq struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	ClassID     *uint   `json:"class_id" binding:"omitempty,min=1"`
}

// UpdateTeacherReq is the body of PUT /teachers/:id. An omitted password keeps the stored one.
type UpdateTeacherReq struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"omitempty,min=8"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	ClassID     *uint   `json:"class_id" binding:"omitempty,min=1"`
}

// TeacherRes is a teacher in API responses.
type TeacherRes struct {
	ID           uint    `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	ClassID      *uint   `json:"class_id"`
	RecordStatus string  `json:"record_status"`
}

// TeacherMessageRes confirms a write and echoes the stored teacher.
type TeacherMessageRes struct {
	Message string     `json:"message"`
	Teacher TeacherRes `json:"teacher"`
}

// FromEntity converts a domain teacher to its response form.
func FromEntity(t *entity.Teacher) TeacherRes {
	return TeacherRes{
		ID:           t.ID,
		FirstName:    t.FirstName,
		LastName:     t.LastName,
		Email:        t.Email,
		PhoneNumber:  t.PhoneNumber,
		ClassID:      t.ClassID,
		RecordStatus: string(t.Status),
	}
}
