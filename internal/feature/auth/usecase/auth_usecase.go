// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"school_backend/internal/feature/auth/domain/entity"
	studententity "school_backend/internal/feature/students/domain/entity"
	teacherentity "school_backend/internal/feature/teachers/domain/entity"
	"school_backend/internal/shared/password"
	"school_backend/internal/shared/record"
)

// StudentFinder は学生の認証情報検索を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StudentFinder interface {
	// FindActiveByCredentials returns the Active students matching code and dob.
	FindActiveByCredentials(ctx context.Context, code string, dob time.Time) ([]studententity.Student, error)
}

// TeacherFinder は教員のメールアドレス検索を抽象化します。
type TeacherFinder interface {
	// FindActiveByEmail returns the Active teacher with the email, or a
	// record.ErrNotFound error when there is none.
	FindActiveByEmail(ctx context.Context, email string) (*teacherentity.Teacher, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	students StudentFinder
	teachers TeacherFinder
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(students StudentFinder, teachers TeacherFinder) *authUsecase {
	return &authUsecase{students: students, teachers: teachers}
}

// StudentLogin succeeds only when exactly one Active student has both the code
// and the date of birth.
func (u *authUsecase) StudentLogin(ctx context.Context, code string, dob time.Time) (*entity.StudentIdentity, error) {
	matches, err := u.students.FindActiveByCredentials(ctx, code, dob)
	if err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		if len(matches) > 1 {
			slog.Warn("student code matches several active students", "student_code", code)
		}
		return nil, record.Unauthenticated()
	}
	s := matches[0]
	return &entity.StudentIdentity{StudentCode: s.Code, Name: s.FullName()}, nil
}

// TeacherAdminLogin はメールアドレスとパスワードで教員を認証します。
// タイミング攻撃を防止するため、教員が存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) TeacherAdminLogin(ctx context.Context, email, plain string) (*entity.StaffIdentity, error) {
	t, err := u.teachers.FindActiveByEmail(ctx, email)
	if errors.Is(err, record.ErrNotFound) {
		// ダミーハッシュとの比較で応答時間を揃える
		password.Burn(plain)
		return nil, record.Unauthenticated()
	}
	if err != nil {
		return nil, err
	}
	if !password.Matches(t.Password, plain) {
		return nil, record.Unauthenticated()
	}
	return &entity.StaffIdentity{UserID: t.ID, Name: t.FullName()}, nil
}
