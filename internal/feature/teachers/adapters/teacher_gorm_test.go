package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_backend/internal/feature/teachers/domain/entity"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

func newTestRepo(t *testing.T) *teacherGorm {
	t.Helper()

	db, err := platformdb.OpenInMemory()
	require.NoError(t, err, "failed to initialize test database")
	return NewTeacherRepository(db)
}

func seedTeacher(t *testing.T, repo *teacherGorm, email string) *entity.Teacher {
	t.Helper()

	phone := "555-0100"
	tc := &entity.Teacher{FirstName: "Grace", LastName: "Hopper", Email: email, Password: "hash", PhoneNumber: &phone}
	require.NoError(t, repo.Create(context.Background(), tc), "failed to seed teacher")
	return tc
}

func TestTeacherGorm_Create(t *testing.T) {
	t.Parallel()

	t.Run("nullable columns", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)

		tc := &entity.Teacher{FirstName: "A", LastName: "B", Email: "a@school.test", Password: "hash", Status: record.StatusInactive}
		require.NoError(t, repo.Create(context.Background(), tc))

		got, err := repo.FindActiveByID(context.Background(), tc.ID)
		require.NoError(t, err)
		assert.Nil(t, got.PhoneNumber)
		assert.Nil(t, got.ClassID)
		assert.Equal(t, record.StatusActive, got.Status)
	})

	t.Run("email taken by an active teacher", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		seedTeacher(t, repo, "dup@school.test")

		err := repo.Create(context.Background(), &entity.Teacher{FirstName: "C", LastName: "D", Email: "dup@school.test", Password: "hash"})

		assert.ErrorIs(t, err, record.ErrConflict)
	})

	t.Run("email of an inactive teacher can be reused", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		old := seedTeacher(t, repo, "reuse@school.test")
		_, err := repo.Deactivate(context.Background(), old.ID)
		require.NoError(t, err)

		err = repo.Create(context.Background(), &entity.Teacher{FirstName: "C", LastName: "D", Email: "reuse@school.test", Password: "hash"})

		assert.NoError(t, err)
	})
}

func TestTeacherGorm_FindActiveByEmail(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	tc := seedTeacher(t, repo, "login@school.test")

	got, err := repo.FindActiveByEmail(context.Background(), "login@school.test")
	require.NoError(t, err)
	assert.Equal(t, tc.ID, got.ID)

	_, err = repo.FindActiveByEmail(context.Background(), "missing@school.test")
	assert.ErrorIs(t, err, record.ErrNotFound)

	_, err = repo.Deactivate(context.Background(), tc.ID)
	require.NoError(t, err)
	_, err = repo.FindActiveByEmail(context.Background(), "login@school.test")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestTeacherGorm_Update(t *testing.T) {
	t.Parallel()

	t.Run("clears optional columns", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		tc := seedTeacher(t, repo, "upd@school.test")

		got, err := repo.Update(context.Background(), tc.ID, func(t *entity.Teacher) {
			t.FirstName = "Ada"
			t.PhoneNumber = nil
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "hash", got.Password)

		stored, err := repo.FindActiveByID(context.Background(), tc.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.PhoneNumber)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		tc := seedTeacher(t, repo, "self@school.test")

		_, err := repo.Update(context.Background(), tc.ID, func(t *entity.Teacher) { t.LastName = "Other" })

		assert.NoError(t, err)
	})

	t.Run("email of another active teacher", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		seedTeacher(t, repo, "first@school.test")
		tc := seedTeacher(t, repo, "second@school.test")

		_, err := repo.Update(context.Background(), tc.ID, func(t *entity.Teacher) { t.Email = "first@school.test" })

		assert.ErrorIs(t, err, record.ErrConflict)
	})

	t.Run("inactive teacher", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		tc := seedTeacher(t, repo, "inactive@school.test")
		_, err := repo.Deactivate(context.Background(), tc.ID)
		require.NoError(t, err)

		_, err = repo.Update(context.Background(), tc.ID, func(t *entity.Teacher) {})

		assert.EqualError(t, err, "Teacher not found or inactive")
	})
}

func TestTeacherGorm_Deactivate(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	tc := seedTeacher(t, repo, "d@school.test")

	out, err := repo.Deactivate(context.Background(), tc.ID)
	require.NoError(t, err)
	assert.Equal(t, record.StatusInactive, out.Status)

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.Deactivate(context.Background(), 999)
	assert.EqualError(t, err, "Teacher not found")
}

func TestTeacherGorm_ActiveEmailIndex(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	seedTeacher(t, repo, "dup@school.test")

	// insert that skipped the count check, as the losing side of a concurrent create would
	err := duplicateEmail(repo.db.Create(&entity.Teacher{FirstName: "A", LastName: "B", Email: "dup@school.test",
		Password: "hash", Status: record.StatusActive}).Error)

	assert.ErrorIs(t, err, record.ErrConflict)
}
