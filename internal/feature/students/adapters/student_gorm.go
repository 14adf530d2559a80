// Package adapters provides the GORM repository for the students feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"school_backend/internal/feature/students/domain/entity"
	"school_backend/internal/feature/students/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

type studentGorm struct {
	db *gorm.DB
}

var _ usecase.StudentRepository = (*studentGorm)(nil)

// NewStudentRepository creates a studentGorm on the given connection.
func NewStudentRepository(db *gorm.DB) *studentGorm {
	return &studentGorm{db: db}
}

// ensureCodeFree fails with a conflict when another Active student uses code.
func ensureCodeFree(tx *gorm.DB, code string, exceptID uint) error {
	var n int64
	q := tx.Model(&entity.Student{}).Scopes(platformdb.Active).Where("student_code = ?", code)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return record.Conflict("Student code %s already exists", code)
	}
	return nil
}

// duplicateCode maps a violation of the Active-code index to a conflict.
func duplicateCode(err error, code string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return record.Conflict("Student code %s already exists", code)
	}
	return err
}

// Create inserts the student with status Active.
func (r *studentGorm) Create(ctx context.Context, s *entity.Student) error {
	s.Status = record.StatusActive
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCodeFree(tx, s.Code, 0); err != nil {
			return err
		}
		return duplicateCode(tx.Create(s).Error, s.Code)
	})
}

// FindActiveByID returns the Active student with the given ID.
func (r *studentGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Student, error) {
	var s entity.Student
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Student not found")
		}
		return nil, err
	}
	return &s, nil
}

// FindActiveByCredentials returns the Active students matching both code and
// date of birth. At most two rows are read; callers only need to know whether
// the match is unique.
func (r *studentGorm) FindActiveByCredentials(ctx context.Context, code string, dob time.Time) ([]entity.Student, error) {
	var students []entity.Student
	err := r.db.WithContext(ctx).
		Scopes(platformdb.Active).
		Where("student_code = ? AND dob = ?", code, record.Day(dob)).
		Order("id ASC").
		Limit(2).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// ListActive returns every Active student ordered by ID.
func (r *studentGorm) ListActive(ctx context.Context) ([]entity.Student, error) {
	var students []entity.Student
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// Update loads the Active student, applies fn and saves every column.
func (r *studentGorm) Update(ctx context.Context, id uint, fn func(s *entity.Student)) (*entity.Student, error) {
	var out *entity.Student
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := platformdb.FindActiveForUpdate[entity.Student](tx, id)
		if err != nil {
			return err
		}
		fn(s)
		s.ID = id
		if err := ensureCodeFree(tx, s.Code, id); err != nil {
			return err
		}
		if err := duplicateCode(tx.Save(s).Error, s.Code); err != nil {
			return err
		}
		out = s
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Student not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate flips the student to Inactive.
func (r *studentGorm) Deactivate(ctx context.Context, id uint) (*entity.Student, error) {
	s, err := platformdb.Deactivate[entity.Student](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Student not found")
	}
	return s, err
}
