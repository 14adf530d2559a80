// Package usecase implements the business logic for the students feature.
package usecase

import (
	"context"
	"time"

	"school_backend/internal/feature/students/domain/entity"
	"school_backend/internal/shared/record"
)

// StudentRepository abstracts the persistence layer for students.
type StudentRepository interface {
	Create(ctx context.Context, s *entity.Student) error
	FindActiveByID(ctx context.Context, id uint) (*entity.Student, error)
	ListActive(ctx context.Context) ([]entity.Student, error)
	Update(ctx context.Context, id uint, fn func(s *entity.Student)) (*entity.Student, error)
	Deactivate(ctx context.Context, id uint) (*entity.Student, error)
}

// StudentInput carries the writable fields of a student.
type StudentInput struct {
	FirstName  string
	LastName   string
	Code       string
	DOB        time.Time
	ClassID    uint
	DateOfJoin time.Time
	TeacherID  uint
}

// StudentUsecase provides the student operations.
type StudentUsecase struct {
	repo StudentRepository
}

// NewStudentUsecase creates a new StudentUsecase with the given repository.
func NewStudentUsecase(r StudentRepository) *StudentUsecase {
	return &StudentUsecase{repo: r}
}

func (in StudentInput) apply(s *entity.Student) {
	s.FirstName = in.FirstName
	s.LastName = in.LastName
	s.Code = in.Code
	s.DOB = record.Day(in.DOB)
	s.ClassID = in.ClassID
	s.DateOfJoin = record.Day(in.DateOfJoin)
	s.TeacherID = in.TeacherID
}

// Create stores an Active student. Dates are normalised to UTC midnight.
func (u *StudentUsecase) Create(ctx context.Context, in StudentInput) (*entity.Student, error) {
	s := &entity.Student{Status: record.StatusActive}
	in.apply(s)
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the Active student with the given ID.
func (u *StudentUsecase) Get(ctx context.Context, id uint) (*entity.Student, error) {
	return u.repo.FindActiveByID(ctx, id)
}

// List returns every Active student.
func (u *StudentUsecase) List(ctx context.Context) ([]entity.Student, error) {
	return u.repo.ListActive(ctx)
}

// Update rewrites an Active student.
func (u *StudentUsecase) Update(ctx context.Context, id uint, in StudentInput) (*entity.Student, error) {
	return u.repo.Update(ctx, id, in.apply)
}

// Deactivate soft-deletes the student.
func (u *StudentUsecase) Deactivate(ctx context.Context, id uint) (*entity.Student, error) {
	return u.repo.Deactivate(ctx, id)
}
