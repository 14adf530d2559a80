// Package adapters provides the GORM repository for the teachers feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"school_backend/internal/feature/teachers/domain/entity"
	"school_backend/internal/feature/teachers/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

type teacherGorm struct {
	db *gorm.DB
}

var _ usecase.TeacherRepository = (*teacherGorm)(nil)

// NewTeacherRepository creates a teacherGorm on the given connection.
func NewTeacherRepository(db *gorm.DB) *teacherGorm {
	return &teacherGorm{db: db}
}

// ensureEmailFree fails with a conflict when another Active teacher uses email.
func ensureEmailFree(tx *gorm.DB, email string, exceptID uint) error {
	var n int64
	q := tx.Model(&entity.Teacher{}).Scopes(platformdb.Active).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return record.Conflict("email already exists")
	}
	return nil
}

// duplicateEmail maps a violation of the Active-email index to a conflict.
func duplicateEmail(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return record.Conflict("email already exists")
	}
	return err
}

// Create inserts the teacher with status Active.
func (r *teacherGorm) Create(ctx context.Context, t *entity.Teacher) error {
	t.Status = record.StatusActive
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEmailFree(tx, t.Email, 0); err != nil {
			return err
		}
		return duplicateEmail(tx.Create(t).Error)
	})
}

// FindActiveByID returns the Active teacher with the given ID.
func (r *teacherGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Teacher, error) {
	var t entity.Teacher
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Teacher not found")
		}
		return nil, err
	}
	return &t, nil
}

// FindActiveByEmail returns the Active teacher with the given email.
func (r *teacherGorm) FindActiveByEmail(ctx context.Context, email string) (*entity.Teacher, error) {
	var t entity.Teacher
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("email = ?", email).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Teacher not found")
		}
		return nil, err
	}
	return &t, nil
}

// ListActive returns every Active teacher ordered by ID.
func (r *teacherGorm) ListActive(ctx context.Context) ([]entity.Teacher, error) {
	var teachers []entity.Teacher
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Order("id ASC").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

// Update loads the Active teacher, applies fn and saves every column.
func (r *teacherGorm) Update(ctx context.Context, id uint, fn func(t *entity.Teacher)) (*entity.Teacher, error) {
	var out *entity.Teacher
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := platformdb.FindActiveForUpdate[entity.Teacher](tx, id)
		if err != nil {
			return err
		}
		fn(t)
		t.ID = id
		if err := ensureEmailFree(tx, t.Email, id); err != nil {
			return err
		}
		if err := duplicateEmail(tx.Save(t).Error); err != nil {
			return err
		}
		out = t
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Teacher not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate flips the teacher to Inactive.
func (r *teacherGorm) Deactivate(ctx context.Context, id uint) (*entity.Teacher, error) {
	t, err := platformdb.Deactivate[entity.Teacher](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Teacher not found")
	}
	return t, err
}
