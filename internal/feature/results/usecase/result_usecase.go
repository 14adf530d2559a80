// Package usecase implements the business logic for the results feature,
// including the validation gate that guards result creation.
package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"school_backend/internal/feature/results/domain/entity"
	"school_backend/internal/shared/record"
)

// ErrReferenceMissing is returned by GateTx lookups when no row has the ID.
var ErrReferenceMissing = errors.New("referenced record does not exist")

// GateTx is the view of one open transaction used by CreateResult. Status
// lookups see rows of any status.
type GateTx interface {
	TeacherStatus(ctx context.Context, id uint) (record.Status, error)
	StudentStatus(ctx context.Context, id uint) (record.Status, error)
	ClassStatus(ctx context.Context, id uint) (record.Status, error)
	Insert(ctx context.Context, r *entity.Result) error
}

// ResultRepository abstracts the persistence layer for results.
type ResultRepository interface {
	// WithinTx runs fn in one transaction, committed only when fn returns nil.
	WithinTx(ctx context.Context, fn func(tx GateTx) error) error

	FindActiveByID(ctx context.Context, id uint) (*entity.Result, error)
	ListMarks(ctx context.Context) ([]entity.MarkRow, error)
	ListMarksByStudentCode(ctx context.Context, code string) ([]entity.SubjectMark, error)
	Update(ctx context.Context, id uint, fn func(r *entity.Result)) (*entity.Result, error)
	Deactivate(ctx context.Context, id uint) (*entity.Result, error)
}

// CreateResultInput carries the fields of a new result.
type CreateResultInput struct {
	StudentID  uint
	ClassID    uint
	SubjectID  uint
	TeacherID  uint
	Marks      float64
	ResultDate time.Time
}

// ResultUsecase provides the result operations.
type ResultUsecase struct {
	repo ResultRepository
}

// NewResultUsecase creates a new ResultUsecase with the given repository.
func NewResultUsecase(r ResultRepository) *ResultUsecase {
	return &ResultUsecase{repo: r}
}

// requireActive turns a gate lookup into the client-facing error.
func requireActive(what string, status record.Status, err error) error {
	if errors.Is(err, ErrReferenceMissing) {
		return record.NotFound("%s not found", what)
	}
	if err != nil {
		return err
	}
	if !status.IsActive() {
		return record.InvalidState("Cannot add result. %s is inactive", what)
	}
	return nil
}

// Create checks that the teacher, student and class exist and are Active, in
// that order, and inserts the result in the same transaction. Nothing is
// written when any check fails. The subject is not checked.
func (u *ResultUsecase) Create(ctx context.Context, in CreateResultInput) (*entity.Result, error) {
	res := &entity.Result{
		StudentID:  in.StudentID,
		ClassID:    in.ClassID,
		SubjectID:  in.SubjectID,
		TeacherID:  in.TeacherID,
		Marks:      in.Marks,
		ResultDate: record.Day(in.ResultDate),
		Status:     record.StatusActive,
	}
	err := u.repo.WithinTx(ctx, func(tx GateTx) error {
		status, err := tx.TeacherStatus(ctx, in.TeacherID)
		if err := requireActive("Teacher", status, err); err != nil {
			return err
		}
		status, err = tx.StudentStatus(ctx, in.StudentID)
		if err := requireActive("Student", status, err); err != nil {
			return err
		}
		status, err = tx.ClassStatus(ctx, in.ClassID)
		if err := requireActive("Class", status, err); err != nil {
			return err
		}
		return tx.Insert(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Get returns the Active result with the given ID.
func (u *ResultUsecase) Get(ctx context.Context, id uint) (*entity.Result, error) {
	return u.repo.FindActiveByID(ctx, id)
}

// List groups the Active results per student and class. Rows arrive ordered by
// student code, class label and subject name.
func (u *ResultUsecase) List(ctx context.Context) ([]entity.StudentResults, error) {
	rows, err := u.repo.ListMarks(ctx)
	if err != nil {
		return nil, err
	}
	return groupMarks(rows), nil
}

func groupMarks(rows []entity.MarkRow) []entity.StudentResults {
	out := make([]entity.StudentResults, 0)
	var parts []string
	flush := func() {
		if len(out) > 0 {
			out[len(out)-1].SubjectsWithMarks = strings.Join(parts, ", ")
		}
		parts = parts[:0]
	}
	for _, row := range rows {
		if n := len(out); n == 0 || out[n-1].StudentCode != row.StudentCode || out[n-1].ClassLabel != row.ClassLabel {
			flush()
			out = append(out, entity.StudentResults{
				StudentName: strings.TrimSpace(row.FirstName + " " + row.LastName),
				StudentCode: row.StudentCode,
				ClassLabel:  row.ClassLabel,
			})
		}
		cur := &out[len(out)-1]
		parts = append(parts, row.SubjectName+": "+strconv.FormatFloat(row.Marks, 'f', -1, 64))
		cur.TotalMarks += row.Marks
	}
	flush()
	return out
}

// Report builds the result sheet of the student with the given code. Marks of
// repeated subjects are added together.
func (u *ResultUsecase) Report(ctx context.Context, studentCode string) (*entity.Report, error) {
	marks, err := u.repo.ListMarksByStudentCode(ctx, studentCode)
	if err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, record.NotFound("No results found")
	}
	rep := &entity.Report{StudentCode: studentCode, SubjectsWithMarks: make(map[string]float64, len(marks))}
	for _, m := range marks {
		rep.SubjectsWithMarks[m.SubjectName] += m.Marks
		rep.TotalMarks += m.Marks
	}
	return rep, nil
}

// Update changes the marks and date of an Active result.
func (u *ResultUsecase) Update(ctx context.Context, id uint, marks float64, date time.Time) (*entity.Result, error) {
	day := record.Day(date)
	return u.repo.Update(ctx, id, func(r *entity.Result) {
		r.Marks = marks
		r.ResultDate = day
	})
}

// Deactivate soft-deletes the result.
func (u *ResultUsecase) Deactivate(ctx context.Context, id uint) (*entity.Result, error) {
	return u.repo.Deactivate(ctx, id)
}
