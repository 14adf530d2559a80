// Package dto defines data transfer objects for the students HTTP API.
package dto

import (
	"fmt"

	"school_backend/internal/feature/students/domain/entity"
	"school_backend/internal/feature/students/usecase"
	"school_backend/internal/shared/record"
)

// StudentReq is the body of create and update requests. Dates use YYYY-MM-DD.
type StudentReq struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	StudentCode string `json:"student_code" binding:"required,max=50"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
	ClassID     uint   `json:"class_id" binding:"required,min=1"`
	DateOfJoin  string `json:"date_of_join" binding:"required,datetime=2006-01-02"`
	TeacherID   uint   `json:"teacher_id" binding:"required,min=1"`
}

// ToInput parses the dates of the request.
func (r StudentReq) ToInput() (usecase.StudentInput, error) {
	dob, err := record.ParseDate(r.DOB)
	if err != nil {
		return usecase.StudentInput{}, fmt.Errorf("invalid dob: %w", err)
	}
	joined, err := record.ParseDate(r.DateOfJoin)
	if err != nil {
		return usecase.StudentInput{}, fmt.Errorf("invalid date_of_join: %w", err)
	}
	return usecase.StudentInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Code:       r.StudentCode,
		DOB:        dob,
		ClassID:    r.ClassID,
		DateOfJoin: joined,
		TeacherID:  r.TeacherID,
	}, nil
}

// StudentRes is a student in API responses.
type StudentRes struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	StudentCode  string `json:"student_code"`
	DOB          string `json:"dob"`
	ClassID      uint   `json:"class_id"`
	DateOfJoin   string `json:"date_of_join"`
	TeacherID    uint   `json:"teacher_id"`
	RecordStatus string `json:"record_status"`
}

// StudentMessageRes confirms a write and echoes the stored student.
type StudentMessageRes struct {
	Message string     `json:"message"`
	Student StudentRes `json:"student"`
}

// FromEntity converts a domain student to its response form.
func FromEntity(s *entity.Student) StudentRes {
	return StudentRes{
		ID:           s.ID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		StudentCode:  s.Code,
		DOB:          s.DOB.Format(record.DateLayout),
		ClassID:      s.ClassID,
		DateOfJoin:   s.DateOfJoin.Format(record.DateLayout),
		TeacherID:    s.TeacherID,
		RecordStatus: string(s.Status),
	}
}
