// Package usecase implements the business logic for the subjects feature.
package usecase

import (
	"context"
	"strings"

	"school_backend/internal/feature/subjects/domain/entity"
	"school_backend/internal/shared/record"
)

// SubjectRepository abstracts the persistence layer for subjects.
type SubjectRepository interface {
	Create(ctx context.Context, s *entity.Subject) error
	FindActiveByID(ctx context.Context, id uint) (*entity.Subject, error)
	ListActive(ctx context.Context) ([]entity.Subject, error)
	UpdateName(ctx context.Context, id uint, name string) (*entity.Subject, error)
	Deactivate(ctx context.Context, id uint) (*entity.Subject, error)
}

// SubjectUsecase provides the subject operations.
type SubjectUsecase struct {
	repo SubjectRepository
}

// NewSubjectUsecase creates a new SubjectUsecase with the given repository.
func NewSubjectUsecase(r SubjectRepository) *SubjectUsecase {
	return &SubjectUsecase{repo: r}
}

var errBlankName = record.InvalidState("subject name must not be blank")

// Create adds an Active subject.
func (u *SubjectUsecase) Create(ctx context.Context, name string) (*entity.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errBlankName
	}
	s := &entity.Subject{Name: name, Status: record.StatusActive}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the Active subject with the given ID.
func (u *SubjectUsecase) Get(ctx context.Context, id uint) (*entity.Subject, error) {
	return u.repo.FindActiveByID(ctx, id)
}

// List returns every Active subject.
func (u *SubjectUsecase) List(ctx context.Context) ([]entity.Subject, error) {
	return u.repo.ListActive(ctx)
}

// Update renames an Active subject.
func (u *SubjectUsecase) Update(ctx context.Context, id uint, name string) (*entity.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errBlankName
	}
	return u.repo.UpdateName(ctx, id, name)
}

// Deactivate soft-deletes the subject.
func (u *SubjectUsecase) Deactivate(ctx context.Context, id uint) (*entity.Subject, error) {
	return u.repo.Deactivate(ctx, id)
}
