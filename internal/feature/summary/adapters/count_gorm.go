// Package adapters provides the GORM count queries for the summary feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"school_backend/internal/feature/summary/domain/entity"
	"school_backend/internal/feature/summary/usecase"
	platformdb "school_backend/internal/platform/db"
)

type countGorm struct {
	db *gorm.DB
}

var _ usecase.CountRepository = (*countGorm)(nil)

// NewCountRepository creates a countGorm on the given connection.
func NewCountRepository(db *gorm.DB) *countGorm {
	return &countGorm{db: db}
}

// CountActive counts the Active rows of every table inside one transaction so
// the numbers come from the same snapshot.
func (r *countGorm) CountActive(ctx context.Context) (*entity.Counts, error) {
	var out entity.Counts
	targets := []struct {
		table string
		dst   *int64
	}{
		{"users", &out.Users},
		{"classes", &out.Classes},
		{"subjects", &out.Subjects},
		{"teachers", &out.Teachers},
		{"students", &out.Students},
		{"results", &out.Results},
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range targets {
			if err := tx.Table(t.table).Scopes(platformdb.Active).Count(t.dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
