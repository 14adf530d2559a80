// Package usecase implements the business logic for the teachers feature.
package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"school_backend/internal/feature/teachers/domain/entity"
	"school_backend/internal/shared/password"
	"school_backend/internal/shared/record"
)

// TeacherRepository abstracts the persistence layer for teachers.
type TeacherRepository interface {
	Create(ctx context.Context, t *entity.Teacher) error
	FindActiveByID(ctx context.Context, id uint) (*entity.Teacher, error)
	ListActive(ctx context.Context) ([]entity.Teacher, error)
	Update(ctx context.Context, id uint, fn func(t *entity.Teacher)) (*entity.Teacher, error)
	Deactivate(ctx context.Context, id uint) (*entity.Teacher, error)
}

// TeacherInput carries the writable fields of a teacher. On update an empty
// Password keeps the stored hash.
type TeacherInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber *string
	ClassID     *uint
}

// TeacherUsecase provides the teacher operations.
type TeacherUsecase struct {
	repo TeacherRepository
	cost int
}

// NewTeacherUsecase creates a new TeacherUsecase with the given repository.
func NewTeacherUsecase(r TeacherRepository) *TeacherUsecase {
	return &TeacherUsecase{repo: r, cost: bcrypt.DefaultCost}
}

// Create hashes the password and stores an Active teacher.
func (u *TeacherUsecase) Create(ctx context.Context, in TeacherInput) (*entity.Teacher, error) {
	hashed, err := password.Hash(in.Password, u.cost)
	if err != nil {
		return nil, err
	}
	t := &entity.Teacher{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    hashed,
		PhoneNumber: in.PhoneNumber,
		ClassID:     in.ClassID,
		Status:      record.StatusActive,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the Active teacher with the given ID.
func (u *TeacherUsecase) Get(ctx context.Context, id uint) (*entity.Teacher, error) {
	return u.repo.FindActiveByID(ctx, id)
}

// List returns every Active teacher.
func (u *TeacherUsecase) List(ctx context.Context) ([]entity.Teacher, error) {
	return u.repo.ListActive(ctx)
}

// Update rewrites an Active teacher.
func (u *TeacherUsecase) Update(ctx context.Context, id uint, in TeacherInput) (*entity.Teacher, error) {
	var hashed string
	if in.Password != "" {
		h, err := password.Hash(in.Password, u.cost)
		if err != nil {
			return nil, err
		}
		hashed = h
	}
	return u.repo.Update(ctx, id, func(t *entity.Teacher) {
		t.FirstName = in.FirstName
		t.LastName = in.LastName
		t.Email = in.Email
		t.PhoneNumber = in.PhoneNumber
		t.ClassID = in.ClassID
		if hashed != "" {
			t.Password = hashed
		}
	})
}

// Deactivate soft-deletes the teacher.
func (u *TeacherUsecase) Deactivate(ctx context.Context, id uint) (*entity.Teacher, error) {
	return u.repo.Deactivate(ctx, id)
}
