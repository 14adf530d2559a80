package di

import (
	"context"
	"errors"

	"gorm.io/gorm"

	teacheradapters "school_backend/internal/feature/teachers/adapters"
	teacherusecase "school_backend/internal/feature/teachers/usecase"
	"school_backend/internal/shared/record"
)

// SeedAdmin creates the first teacher/admin account so that /teacher-login
// works on a fresh database. It reports false when an Active teacher already
// uses the email.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, plain string) (bool, error) {
	uc := teacherusecase.NewTeacherUsecase(teacheradapters.NewTeacherRepository(db))
	_, err := uc.Create(ctx, teacherusecase.TeacherInput{
		FirstName: "School",
		LastName:  "Admin",
		Email:     email,
		Password:  plain,
	})
	if errors.Is(err, record.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
