// Package dto defines data transfer objects for the results HTTP API.
package dto

import (
	"school_backend/internal/feature/results/domain/entity"
	"school_backend/internal/shared/record"
)

// CreateResultReq is the body of POST /results.
type CreateResultReq struct {
	StudentID  uint     `json:"student_id" binding:"required,min=1"`
	ClassID    uint     `json:"class_id" binding:"required,min=1"`
	SubjectID  uint     `json:"subject_id" binding:"required,min=1"`
	TeacherID  uint     `json:"teacher_id" binding:"required,min=1"`
	Marks      *float64 `json:"marks" binding:"required"`
	ResultDate string   `json:"result_date" binding:"required,datetime=2006-01-02"`
}

// UpdateResultReq is the body of PUT /results/:id.
type UpdateResultReq struct {
	Marks      *float64 `json:"marks" binding:"required"`
	ResultDate string   `json:"result_date" binding:"required,datetime=2006-01-02"`
}

// ResultRes is a result in API responses.
type ResultRes struct {
	ID           uint    `json:"id"`
	StudentID    uint    `json:"student_id"`
	ClassID      uint    `json:"class_id"`
	SubjectID    uint    `json:"subject_id"`
	TeacherID    uint    `json:"teacher_id"`
	Marks        float64 `json:"marks"`
	ResultDate   string  `json:"result_date"`
	RecordStatus string  `json:"record_status"`
}

// ResultMessageRes confirms a write and echoes the stored result.
type ResultMessageRes struct {
	Message string    `json:"message"`
	Result  ResultRes `json:"result"`
}

// StudentResultsRes is one row of GET /results.
type StudentResultsRes struct {
	StudentName       string  `json:"student_name"`
	StudentCode       string  `json:"student_code"`
	ClassName         int     `json:"class_name"`
	SubjectsWithMarks string  `json:"subjects_with_marks"`
	TotalMarks        float64 `json:"total_marks"`
}

// ReportRes is the body of GET /results/student/:code.
type ReportRes struct {
	StudentCode       string             `json:"student_code"`
	SubjectsWithMarks map[string]float64 `json:"subjects_with_marks"`
	TotalMarks        float64            `json:"total_marks"`
}

// FromEntity converts a domain result to its response form.
func FromEntity(r *entity.Result) ResultRes {
	return ResultRes{
		ID:           r.ID,
		StudentID:    r.StudentID,
		ClassID:      r.ClassID,
		SubjectID:    r.SubjectID,
		TeacherID:    r.TeacherID,
		Marks:        r.Marks,
		ResultDate:   r.ResultDate.Format(record.DateLayout),
		RecordStatus: string(r.Status),
	}
}

// FromStudentResults converts the grouped listing.
func FromStudentResults(rows []entity.StudentResults) []StudentResultsRes {
	out := make([]StudentResultsRes, 0, len(rows))
	for _, r := range rows {
		out = append(out, StudentResultsRes{
			StudentName:       r.StudentName,
			StudentCode:       r.StudentCode,
			ClassName:         r.ClassLabel,
			SubjectsWithMarks: r.SubjectsWithMarks,
			TotalMarks:        r.TotalMarks,
		})
	}
	return out
}

// FromReport converts a student report.
func FromReport(r *entity.Report) ReportRes {
	return ReportRes{StudentCode: r.StudentCode, SubjectsWithMarks: r.SubjectsWithMarks, TotalMarks: r.TotalMarks}
}
