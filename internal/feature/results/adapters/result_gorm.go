// Package adapters provides the GORM repository for the results feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"school_backend/internal/feature/results/domain/entity"
	"school_backend/internal/feature/results/usecase"
	platformdb "school_backend/internal/platform/db"
	"school_backend/internal/shared/record"
)

type resultGorm struct {
	db *gorm.DB
}

var _ usecase.ResultRepository = (*resultGorm)(nil)

// NewResultRepository creates a resultGorm on the given connection.
func NewResultRepository(db *gorm.DB) *resultGorm {
	return &resultGorm{db: db}
}

// gateTx implements usecase.GateTx on an open transaction.
type gateTx struct {
	tx *gorm.DB
}

var _ usecase.GateTx = (*gateTx)(nil)

type statusRow struct {
	Status record.Status `gorm:"column:record_status"`
}

// status reads the status of a row of table under a shared lock.
func (g *gateTx) status(ctx context.Context, table string, id uint) (record.Status, error) {
	var row statusRow
	err := g.tx.WithContext(ctx).
		Table(table).
		Select(record.ColumnStatus).
		Scopes(platformdb.LockForShare).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", usecase.ErrReferenceMissing
	}
	if err != nil {
		return "", err
	}
	return row.Status, nil
}

func (g *gateTx) TeacherStatus(ctx context.Context, id uint) (record.Status, error) {
	return g.status(ctx, "teachers", id)
}

func (g *gateTx) StudentStatus(ctx context.Context, id uint) (record.Status, error) {
	return g.status(ctx, "students", id)
}

func (g *gateTx) ClassStatus(ctx context.Context, id uint) (record.Status, error) {
	return g.status(ctx, "classes", id)
}

// Insert stores the result with status Active.
func (g *gateTx) Insert(ctx context.Context, r *entity.Result) error {
	r.Status = record.StatusActive
	return g.tx.WithContext(ctx).Create(r).Error
}

// WithinTx runs fn in a single transaction. Any error from fn rolls back.
func (r *resultGorm) WithinTx(ctx context.Context, fn func(tx usecase.GateTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gateTx{tx: tx})
	})
}

// FindActiveByID returns the Active result with the given ID.
func (r *resultGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Result, error) {
	var res entity.Result
	if err := r.db.WithContext(ctx).Scopes(platformdb.Active).Where("id = ?", id).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.NotFound("Result not found")
		}
		return nil, err
	}
	return &res, nil
}

// ListMarks returns every Active result joined with its student, class and
// subject, ordered by student code, class label and subject name.
func (r *resultGorm) ListMarks(ctx context.Context) ([]entity.MarkRow, error) {
	var rows []entity.MarkRow
	err := r.db.WithContext(ctx).
		Table("results AS r").
		Select("s.student_code, s.first_name, s.last_name, c.class AS class_label, sub.subject_name, r.marks").
		Joins("JOIN students s ON s.id = r.student_id").
		Joins("JOIN classes c ON c.id = r.class_id").
		Joins("JOIN subjects sub ON sub.id = r.subject_id").
		Where("r.record_status = ?", record.StatusActive).
		Order("s.student_code, c.class, sub.subject_name, r.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListMarksByStudentCode returns the Active results of the student with the
// given code, ordered by subject name.
func (r *resultGorm) ListMarksByStudentCode(ctx context.Context, code string) ([]entity.SubjectMark, error) {
	var marks []entity.SubjectMark
	err := r.db.WithContext(ctx).
		Table("results AS r").
		Select("r.subject_id, sub.subject_name, r.marks").
		Joins("JOIN subjects sub ON sub.id = r.subject_id").
		Joins("JOIN students st ON st.id = r.student_id").
		Where("st.student_code = ? AND r.record_status = ?", code, record.StatusActive).
		Order("sub.subject_name, r.id").
		Scan(&marks).Error
	if err != nil {
		return nil, err
	}
	return marks, nil
}

// Update loads the Active result, applies fn and saves every column.
func (r *resultGorm) Update(ctx context.Context, id uint, fn func(r *entity.Result)) (*entity.Result, error) {
	var out *entity.Result
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := platformdb.FindActiveForUpdate[entity.Result](tx, id)
		if err != nil {
			return err
		}
		fn(res)
		res.ID = id
		if err := tx.Save(res).Error; err != nil {
			return err
		}
		out = res
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Result not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate flips the result to Inactive.
func (r *resultGorm) Deactivate(ctx context.Context, id uint) (*entity.Result, error) {
	res, err := platformdb.Deactivate[entity.Result](r.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, record.NotFound("Result not found")
	}
	return res, err
}
