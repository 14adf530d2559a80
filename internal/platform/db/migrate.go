package db

import (
	"fmt"

	classentity "school_backend/internal/feature/classes/domain/entity"
	resultentity "school_backend/internal/feature/results/domain/entity"
	studententity "school_backend/internal/feature/students/domain/entity"
	subjectentity "school_backend/internal/feature/subjects/domain/entity"
	teacherentity "school_backend/internal/feature/teachers/domain/entity"
	userentity "school_backend/internal/feature/users/domain/entity"

	"school_backend/internal/shared/record"

	"gorm.io/gorm"
)

// Models lists every table of the schema in dependency order.
func Models() []any {
	return []any{
		&userentity.User{},
		&classentity.Class{},
		&subjectentity.Subject{},
		&teacherentity.Teacher{},
		&studententity.Student{},
		&resultentity.Result{},
	}
}

// activeUnique is a unique index restricted to Active rows. Deactivated rows
// keep their values without blocking reuse.
type activeUnique struct {
	name   string
	table  string
	column string
}

// activeUniqueIndexes backs the Active-only uniqueness checks of the
// repositories, so concurrent writers that both pass the check cannot both commit.
var activeUniqueIndexes = []activeUnique{
	{name: "ux_users_email_active", table: "users", column: "email"},
	{name: "ux_classes_class_active", table: "classes", column: "class"},
	{name: "ux_teachers_email_active", table: "teachers", column: "email"},
	{name: "ux_students_code_active", table: "students", column: "student_code"},
}

// Migrate creates or updates the six tables and the partial unique indexes.
// PostgreSQL and SQLite both accept the WHERE clause.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	for _, ix := range activeUniqueIndexes {
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s) WHERE %s = '%s'",
			ix.name, ix.table, ix.column, record.ColumnStatus, record.StatusActive)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", ix.name, err)
		}
	}
	return nil
}
