// Package adapters provides the GORM repository for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"school_backend/internal/feature/users/domain/entity"
	"school_backend/internal/feature/users/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

// userGorm is a GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm on the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

var errEmailTaken = record.Conflict("email already exists")

// duplicateEmail maps a violation of the Active-email index to a conflict.
func duplicateEmail(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errEmailTaken
	}
	return err
}

// ensureEmailFree fails with a conflict when another Active user uses email.
func ensureEmailFree(tx *gorm.DB, email string, exceptID uint) error {
	var n int64
	q := tx.Model(&entity.User{}).Scopes(platformdb.Active).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errEmailTaken
	}
	return nil
}

// Create inserts the user with status Active.
// If an Active user with the same email exists it returns a conflict error.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	u.Status = record.StatusActive
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEmailFree(tx, u.Email, 0); err != nil {
			return err
		}
		return tx.Create(u).Error
	})
	return duplicateEmail(err)
}

// FindActiveByID returns the Active user with the given ID.
func (r *userGorm) FindActiveByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}

// ListActive returns every Active user ordered by ID.
func (r *userGorm) ListActive(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update loads the Active user, applies fn and saves every column.
func (r *userGorm) Update(ctx context.Context, id uint, fn func(u *entity.User)) (*entity.User, error) {
	var out *entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := platformdb.FindActiveForUpdate[entity.User](tx, id)
		if err != nil {
			return err
		}
		fn(u)
		u.ID = id
		if u.Status.IsActive() {
			if err := ensureEmailFree(tx, u.Email, id); err != nil {
				return err
			}
		}
		if err := tx.Save(u).Error; err != nil {
			return err
		}
		out = u
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("User not found or inactive")
	}
	if err != nil {
		return nil, duplicateEmail(err)
	}
	return out, nil
}

// Deactivate flips the user to Inactive and re-reads the row.
func (r *userGorm) Deactivate(ctx context.Context, id uint) (*entity.User, error) {
	u, err := platformdb.Deactivate[entity.User](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("User not found")
	}
	return u, err
}
