// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"

	"school_backend/internal/feature/users/domain/entity"
	"school_backend/internal/shared/password"
	"school_backend/internal/shared/record"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns a conflict error if the email is taken.
	Create(ctx context.Context, u *entity.User) error

	// FindActiveByID retrieves the Active user with the given ID.
	FindActiveByID(ctx context.Context, id uint) (*entity.User, error)

	// ListActive retrieves every Active user.
	ListActive(ctx context.Context) ([]entity.User, error)

	// Update applies fn to the Active user with the given ID and saves it.
	Update(ctx context.Context, id uint, fn func(u *entity.User)) (*entity.User, error)

	// Deactivate flips the user to Inactive and returns the stored row.
	Deactivate(ctx context.Context, id uint) (*entity.User, error)
}

// CreateUserInput carries the fields of a new user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UpdateUserInput carries the fields of a user update. An empty Password keeps
// the stored hash and an empty Status keeps the current status.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Status    record.Status
}

// UserUsecase implements the user operations.
type UserUsecase struct {
	users UserRepository
	cost  int
}

// NewUserUsecase creates a UserUsecase that hashes passwords with bcrypt.DefaultCost.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users, cost: bcrypt.DefaultCost}
}

// Create registers a new Active user with a hashed password.
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hashed, err := password.Hash(in.Password, u.cost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.DefaultRole
	}
	user := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashed,
		Role:      role,
		Status:    record.StatusActive,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the Active user with the given ID.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindActiveByID(ctx, id)
}

// List returns every Active user.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.ListActive(ctx)
}

// Update rewrites an Active user. A new password is re-hashed before the
// repository transaction starts.
func (u *UserUsecase) Update(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	var hashed string
	if in.Password != "" {
		h, err := password.Hash(in.Password, u.cost)
		if err != nil {
			return nil, err
		}
		hashed = h
	}
	return u.users.Update(ctx, id, func(user *entity.User) {
		user.FirstName = in.FirstName
		user.LastName = in.LastName
		user.Email = in.Email
		if in.Role != "" {
			user.Role = in.Role
		}
		if hashed != "" {
			user.Password = hashed
		}
		if in.Status.Valid() {
			user.Status = in.Status
		}
	})
}

// Deactivate soft-deletes the user and returns the deactivated row.
func (u *UserUsecase) Deactivate(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.Deactivate(ctx, id)
}
