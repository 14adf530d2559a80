// Package usecase implements the business logic for the classes feature.
package usecase

import (
	"context"

	"school_backend/internal/feature/classes/domain/entity"
	"school_backend/internal/shared/record"
)

// ClassRepository abstracts the persistence layer for classes.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ClassRepository interface {
	Create(ctx context.Context, c *entity.Class) error
	FindActiveByID(ctx context.Context, id uint) (*entity.Class, error)
	ListActive(ctx context.Context) ([]entity.Class, error)
	UpdateLabel(ctx context.Context, id uint, label int) (*entity.Class, error)
	Deactivate(ctx context.Context, id uint) (*entity.Class, error)
}

// ClassUsecase provides the class operations.
type ClassUsecase struct {
	repo ClassRepository
}

// NewClassUsecase creates a new ClassUsecase with the given repository.
func NewClassUsecase(r ClassRepository) *ClassUsecase {
	return &ClassUsecase{repo: r}
}

// Create adds an Active class with the given label.
func (u *ClassUsecase) Create(ctx context.Context, label int) (*entity.Class, error) {
	c := &entity.Class{Label: label, Status: record.StatusActive}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the Active class with the given ID.
func (u *ClassUsecase) Get(ctx context.Context, id uint) (*entity.Class, error) {
	return u.repo.FindActiveByID(ctx, id)
}

// List returns every Active class.
func (u *ClassUsecase) List(ctx context.Context) ([]entity.Class, error) {
	return u.repo.ListActive(ctx)
}

// Update changes the label of an Active class.
func (u *ClassUsecase) Update(ctx context.Context, id uint, label int) (*entity.Class, error) {
	return u.repo.UpdateLabel(ctx, id, label)
}

// Deactivate soft-deletes the class.
func (u *ClassUsecase) Deactivate(ctx context.Context, id uint) (*entity.Class, error) {
	return u.repo.Deactivate(ctx, id)
}
