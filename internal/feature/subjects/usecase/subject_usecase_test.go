package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_backend/internal/feature/subjects/domain/entity"
	"school_backend/internal/shared/record"
)

type mockSubjectRepository struct {
	created *entity.Subject
	renamed string
}

func (m *mockSubjectRepository) Create(ctx context.Context, s *entity.Subject) error {
	s.ID = 1
	m.created = s
	return nil
}

func (m *mockSubjectRepository) FindActiveByID(ctx context.Context, id uint) (*entity.Subject, error) {
	return nil, record.NotFound("Subject not found")
}

func (m *mockSubjectRepository) ListActive(ctx context.Context) ([]entity.Subject, error) {
	return nil, nil
}

func (m *mockSubjectRepository) UpdateName(ctx context.Context, id uint, name string) (*entity.Subject, error) {
	m.renamed = name
	return &entity.Subject{ID: id, Name: name, Status: record.StatusActive}, nil
}

func (m *mockSubjectRepository) Deactivate(ctx context.Context, id uint) (*entity.Subject, error) {
	return &entity.Subject{ID: id, Status: record.StatusInactive}, nil
}

func TestSubjectUsecase_Create_TrimsName(t *testing.T) {
	repo := &mockSubjectRepository{}
	uc := NewSubjectUsecase(repo)

	s, err := uc.Create(context.Background(), "  Physics ")

	require.NoError(t, err)
	assert.Equal(t, "Physics", s.Name)
	assert.Equal(t, record.StatusActive, repo.created.Status)
}

func TestSubjectUsecase_BlankName(t *testing.T) {
	repo := &mockSubjectRepository{}
	uc := NewSubjectUsecase(repo)

	_, err := uc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, record.ErrInvalidState)
	assert.Nil(t, repo.created)

	_, err = uc.Update(context.Background(), 1, "\t")
	assert.ErrorIs(t, err, record.ErrInvalidState)
	assert.Empty(t, repo.renamed)
}

func TestSubjectUsecase_Update(t *testing.T) {
	repo := &mockSubjectRepository{}
	uc := NewSubjectUsecase(repo)

	s, err := uc.Update(context.Background(), 4, " Chemistry")

	require.NoError(t, err)
	assert.Equal(t, "Chemistry", repo.renamed)
	assert.Equal(t, uint(4), s.ID)
}
