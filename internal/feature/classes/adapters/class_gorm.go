// Package adapters provides the GORM repository for the classes feature.
package adapters

import (
	"context"
	"errors"

	"school_backend/internal/feature/classes/domain/entity"
	"school_backend/internal/feature/classes/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"

	"gorm.io/gorm"
)

// classGorm is a GORM implementation of the ClassRepository interface.
type classGorm struct {
	db *gorm.DB
}

var _ usecase.ClassRepository = (*classGorm)(nil)

// NewClassRepository creates a classGorm on the given connection.
func NewClassRepository(db *gorm.DB) *classGorm {
	return &classGorm{db: db}
}

// ensureLabelFree fails with a conflict when another Active class already uses label.
func ensureLabelFree(tx *gorm.DB, label int, exceptID uint) error {
	var n int64
	q := tx.Model(&entity.Class{}).Scopes(platformdb.Active).Where("class = ?", label)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return record.Conflict("Class %d already exists", label)
	}
	return nil
}

// duplicateLabel maps a violation of the Active-label index to a conflict.
func duplicateLabel(err error, label int) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return record.Conflict("Class %d already exists", label)
	}
	return err
}

// Create inserts the class with status Active.
func (r *classGorm) Create(ctx context.Context, c *entity.Class) error {
	c.Status = record.StatusActive
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureLabelFree(tx, c.Label, 0); err != nil {
			return err
		}
		return duplicateLabel(tx.Create(c).Error, c.Label)
	})
}

// FindActiveByID returns the Active class with the given ID.
func (r *classGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Class, error) {
	var c entity.Class
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Class not found")
		}
		return nil, err
	}
	return &c, nil
}

// ListActive returns every Active class ordered by ID.
func (r *classGorm) ListActive(ctx context.Context) ([]entity.Class, error) {
	var classes []entity.Class
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// UpdateLabel changes the label of an Active class and returns the stored row.
func (r *classGorm) UpdateLabel(ctx context.Context, id uint, label int) (*entity.Class, error) {
	var out *entity.Class
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := platformdb.FindActiveForUpdate[entity.Class](tx, id)
		if err != nil {
			return err
		}
		if err := ensureLabelFree(tx, label, id); err != nil {
			return err
		}
		if err := duplicateLabel(tx.Model(c).Update("class", label).Error, label); err != nil {
			return err
		}
		out = c
		return tx.First(out, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Class not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate flips the class to Inactive.
func (r *classGorm) Deactivate(ctx context.Context, id uint) (*entity.Class, error) {
	c, err := platformdb.Deactivate[entity.Class](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Class not found")
	}
	return c, err
}
