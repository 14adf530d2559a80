package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	classentity "school_backend/internal/feature/classes/domain/entity"
	"school_backend/internal/feature/results/domain/entity"
	"school_backend/internal/feature/results/usecase"
	studententity "school_backend/internal/feature/students/domain/entity"
	subjectentity "school_backend/internal/feature/subjects/domain/entity"
	teacherentity "school_backend/internal/feature/teachers/domain/entity"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

// fixture holds one Active row of every entity a result references.
type fixture struct {
	db      *gorm.DB
	repo    *resultGorm
	uc      *usecase.ResultUsecase
	class   *classentity.Class
	teacher *teacherentity.Teacher
	student *studententity.Student
	math    *subjectentity.Subject
	physics *subjectentity.Subject
}

var day = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := platformdb.OpenInMemory()
	require.NoError(t, err, "failed to initialize test database")

	f := &fixture{db: db, repo: NewResultRepository(db)}
	f.uc = usecase.NewResultUsecase(f.repo)

	f.class = &classentity.Class{Label: 10, Status: record.StatusActive}
	require.NoError(t, db.Create(f.class).Error)
	f.teacher = &teacherentity.Teacher{FirstName: "Grace", LastName: "Hopper", Email: "g@school.test", Password: "hash", ClassID: &f.class.ID, Status: record.StatusActive}
	require.NoError(t, db.Create(f.teacher).Error)
	f.student = &studententity.Student{FirstName: "Alan", LastName: "Turing", Code: "S001", DOB: time.Date(2010, time.May, 1, 0, 0, 0, 0, time.UTC),
		ClassID: f.class.ID, DateOfJoin: day, TeacherID: f.teacher.ID, Status: record.StatusActive}
	require.NoError(t, db.Create(f.student).Error)
	f.math = &subjectentity.Subject{Name: "Math", Status: record.StatusActive}
	require.NoError(t, db.Create(f.math).Error)
	f.physics = &subjectentity.Subject{Name: "Physics", Status: record.StatusActive}
	require.NoError(t, db.Create(f.physics).Error)
	return f
}

func (f *fixture) input(subjectID uint, marks float64) usecase.CreateResultInput {
	return usecase.CreateResultInput{
		StudentID:  f.student.ID,
		ClassID:    f.class.ID,
		SubjectID:  subjectID,
		TeacherID:  f.teacher.ID,
		Marks:      marks,
		ResultDate: day,
	}
}

func (f *fixture) deactivate(t *testing.T, table string, id uint) {
	t.Helper()
	require.NoError(t, f.db.Table(table).Where("id = ?", id).Update(record.ColumnStatus, record.StatusInactive).Error)
}

func (f *fixture) countResults(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&entity.Result{}).Count(&n).Error)
	return n
}

func TestResultCreate_Gate(t *testing.T) {
	t.Parallel()

	t.Run("all references active", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		res, err := f.uc.Create(context.Background(), f.input(f.math.ID, 85.5))

		require.NoError(t, err)
		assert.NotZero(t, res.ID)
		assert.Equal(t, record.StatusActive, res.Status)

		rep, err := f.uc.Report(context.Background(), "S001")
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"Math": 85.5}, rep.SubjectsWithMarks)
		assert.Equal(t, 85.5, rep.TotalMarks)
	})

	tests := []struct {
		name    string
		prepare func(t *testing.T, f *fixture, in *usecase.CreateResultInput)
		kind    error
		message string
	}{
		{
			name: "inactive teacher",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) {
				f.deactivate(t, "teachers", f.teacher.ID)
			},
			kind:    record.ErrInvalidState,
			message: "Cannot add result. Teacher is inactive",
		},
		{
			name:    "missing teacher",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) { in.TeacherID = 999 },
			kind:    record.ErrNotFound,
			message: "Teacher not found",
		},
		{
			name:    "missing student",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) { in.StudentID = 999 },
			kind:    record.ErrNotFound,
			message: "Student not found",
		},
		{
			name: "inactive student",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) {
				f.deactivate(t, "students", f.student.ID)
			},
			kind:    record.ErrInvalidState,
			message: "Cannot add result. Student is inactive",
		},
		{
			name:    "inactive class",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) { f.deactivate(t, "classes", f.class.ID) },
			kind:    record.ErrInvalidState,
			message: "Cannot add result. Class is inactive",
		},
		{
			name:    "missing class",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) { in.ClassID = 999 },
			kind:    record.ErrNotFound,
			message: "Class not found",
		},
		{
			name: "teacher is checked before student",
			prepare: func(t *testing.T, f *fixture, in *usecase.CreateResultInput) {
				f.deactivate(t, "teachers", f.teacher.ID)
				in.StudentID = 999
			},
			kind:    record.ErrInvalidState,
			message: "Cannot add result. Teacher is inactive",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := setup(t)
			in := f.input(f.math.ID, 70)
			tt.prepare(t, f, &in)

			res, err := f.uc.Create(context.Background(), in)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.message)
			assert.Zero(t, f.countResults(t), "nothing is inserted when the gate fails")
		})
	}
}

func TestResultGorm_WithinTxRollsBack(t *testing.T) {
	t.Parallel()

	f := setup(t)
	err := f.repo.WithinTx(context.Background(), func(tx usecase.GateTx) error {
		require.NoError(t, tx.Insert(context.Background(), &entity.Result{
			StudentID: f.student.ID, ClassID: f.class.ID, SubjectID: f.math.ID, TeacherID: f.teacher.ID, Marks: 1, ResultDate: day,
		}))
		return record.InvalidState("abort")
	})

	assert.Error(t, err)
	assert.Zero(t, f.countResults(t))
}

func TestResultGorm_ListMarks(t *testing.T) {
	t.Parallel()

	f := setup(t)
	other := &studententity.Student{FirstName: "Ada", LastName: "Lovelace", Code: "S000", DOB: day, ClassID: f.class.ID,
		DateOfJoin: day, TeacherID: f.teacher.ID, Status: record.StatusActive}
	require.NoError(t, f.db.Create(other).Error)

	_, err := f.uc.Create(context.Background(), f.input(f.physics.ID, 90))
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), f.input(f.math.ID, 85.5))
	require.NoError(t, err)
	in := f.input(f.math.ID, 60)
	in.StudentID = other.ID
	_, err = f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	gone, err := f.uc.Create(context.Background(), f.input(f.math.ID, 100))
	require.NoError(t, err)
	_, err = f.repo.Deactivate(context.Background(), gone.ID)
	require.NoError(t, err)

	got, err := f.uc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.StudentResults{
		{StudentName: "Ada Lovelace", StudentCode: "S000", ClassLabel: 10, SubjectsWithMarks: "Math: 60", TotalMarks: 60},
		{StudentName: "Alan Turing", StudentCode: "S001", ClassLabel: 10, SubjectsWithMarks: "Math: 85.5, Physics: 90", TotalMarks: 175.5},
	}, got)
}

func TestResultReport_NoResults(t *testing.T) {
	t.Parallel()

	f := setup(t)

	rep, err := f.uc.Report(context.Background(), "S001")

	assert.Nil(t, rep)
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.EqualError(t, err, "No results found")
}

func TestResultGorm_UpdateAndDeactivate(t *testing.T) {
	t.Parallel()

	f := setup(t)
	res, err := f.uc.Create(context.Background(), f.input(f.math.ID, 50))
	require.NoError(t, err)

	updated, err := f.uc.Update(context.Background(), res.ID, 75, time.Date(2024, time.April, 2, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Marks)
	assert.Equal(t, f.student.ID, updated.StudentID)

	stored, err := f.repo.FindActiveByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", stored.ResultDate.UTC().Format(record.DateLayout))

	out, err := f.repo.Deactivate(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, record.StatusInactive, out.Status)

	_, err = f.uc.Update(context.Background(), res.ID, 10, day)
	assert.EqualError(t, err, "Result not found or inactive")

	_, err = f.repo.FindActiveByID(context.Background(), res.ID)
	assert.EqualError(t, err, "Result not found")

	_, err = f.repo.Deactivate(context.Background(), 12345)
	assert.EqualError(t, err, "Result not found")
}
