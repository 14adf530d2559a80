// Package usecase implements the read-only summary of active records.
package usecase

import (
	"context"

	"school_backend/internal/feature/summary/domain/entity"
)

// CountRepository counts Active records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CountRepository interface {
	CountActive(ctx context.Context) (*entity.Counts, error)
}

// SummaryUsecase provides the summary operation.
type SummaryUsecase struct {
	repo CountRepository
}

// NewSummaryUsecase creates a new SummaryUsecase with the given repository.
func NewSummaryUsecase(r CountRepository) *SummaryUsecase {
	return &SummaryUsecase{repo: r}
}

// Counts returns the Active record counts.
func (u *SummaryUsecase) Counts(ctx context.Context) (*entity.Counts, error) {
	return u.repo.CountActive(ctx)
}
