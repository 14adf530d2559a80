package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_backend/internal/feature/subjects/domain/entity"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

func newTestRepo(t *testing.T) *subjectGorm {
	t.Helper()

	db, err := platformdb.OpenInMemory()
	require.NoError(t, err, "failed to initialize test database")
	return NewSubjectRepository(db)
}

func seedSubject(t *testing.T, repo *subjectGorm, name string) *entity.Subject {
	t.Helper()

	s := &entity.Subject{Name: name}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestSubjectGorm_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	s := seedSubject(t, repo, "Mathematics")

	assert.NotZero(t, s.ID)
	assert.Equal(t, record.StatusActive, s.Status)

	found, err := repo.FindActiveByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", found.Name)

	_, err = repo.FindActiveByID(context.Background(), 999)
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.EqualError(t, err, "Subject not found")
}

func TestSubjectGorm_ListActiveExcludesInactive(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	seedSubject(t, repo, "Mathematics")
	english := seedSubject(t, repo, "English")
	seedSubject(t, repo, "Science")
	_, err := repo.Deactivate(context.Background(), english.ID)
	require.NoError(t, err)

	subjects, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Mathematics", subjects[0].Name)
	assert.Equal(t, "Science", subjects[1].Name)
}

func TestSubjectGorm_UpdateName(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	s := seedSubject(t, repo, "Maths")

	updated, err := repo.UpdateName(context.Background(), s.ID, "Mathematics")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Name)

	_, err = repo.Deactivate(context.Background(), s.ID)
	require.NoError(t, err)

	_, err = repo.UpdateName(context.Background(), s.ID, "Algebra")
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.EqualError(t, err, "Subject not found or inactive")
}

func TestSubjectGorm_DeactivateTwice(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	s := seedSubject(t, repo, "History")

	for i := 0; i < 2; i++ {
		out, err := repo.Deactivate(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, record.StatusInactive, out.Status)
	}

	_, err := repo.FindActiveByID(context.Background(), s.ID)
	assert.ErrorIs(t, err, record.ErrNotFound)

	_, err = repo.Deactivate(context.Background(), 12345)
	assert.ErrorIs(t, err, record.ErrNotFound)
}
