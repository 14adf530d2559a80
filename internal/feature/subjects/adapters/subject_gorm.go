// Package adapters provides the GORM repository for the subjects feature.
package adapters

import (
	"context"
	"errors"

	"school_backend/internal/feature/subjects/domain/entity"
	"school_backend/internal/feature/subjects/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"

	"gorm.io/gorm"
)

type subjectGorm struct {
	db *gorm.DB
}

var _ usecase.SubjectRepository = (*subjectGorm)(nil)

// NewSubjectRepository creates a subjectGorm on the given connection.
func NewSubjectRepository(db *gorm.DB) *subjectGorm {
	return &subjectGorm{db: db}
}

// Create inserts the subject with status Active.
func (r *subjectGorm) Create(ctx context.Context, s *entity.Subject) error {
	s.Status = record.StatusActive
	return r.db.WithContext(ctx).Create(s).Error
}

// FindActiveByID returns the Active subject with the given ID.
func (r *subjectGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Subject, error) {
	var s entity.Subject
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Subject not found")
		}
		return nil, err
	}
	return &s, nil
}

// ListActive returns every Active subject ordered by ID.
func (r *subjectGorm) ListActive(ctx context.Context) ([]entity.Subject, error) {
	var subjects []entity.Subject
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Order("id ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

// UpdateName renames an Active subject and returns the stored row.
func (r *subjectGorm) UpdateName(ctx context.Context, id uint, name string) (*entity.Subject, error) {
	var out *entity.Subject
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := platformdb.FindActiveForUpdate[entity.Subject](tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(s).Update("subject_name", name).Error; err != nil {
			return err
		}
		out = s
		return tx.First(out, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Subject not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate flips the subject to Inactive.
func (r *subjectGorm) Deactivate(ctx context.Context, id uint) (*entity.Subject, error) {
	s, err := platformdb.Deactivate[entity.Subject](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Subject not found")
	}
	return s, err
}
