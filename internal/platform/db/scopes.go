package db

import (
	"school_backend/internal/shared/record"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Active restricts a query to rows whose status is Active.
func Active(tx *gorm.DB) *gorm.DB {
	return tx.Where(record.ColumnStatus+" = ?", record.StatusActive)
}

// LockForShare takes shared row locks on the selected rows where the dialect
// supports it, so that concurrent status flips wait for the current transaction.
// SQLite serialises writers on its own and has no row locks.
func LockForShare(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == DriverPostgres {
		return tx.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return tx
}

// Deactivate flips the status of the row of T with the given id to Inactive
// and returns the row as stored afterwards. Deactivating an already Inactive
// row succeeds. It returns gorm.ErrRecordNotFound when no row has that id.
func Deactivate[T any](tx *gorm.DB, id uint) (*T, error) {
	var out T
	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			return err
		}
		if err := tx.Model(&out).Update(record.ColumnStatus, record.StatusInactive).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// lockForUpdate takes exclusive row locks on PostgreSQL.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == DriverPostgres {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// FindActiveForUpdate loads and locks the Active row of T with the given id, or
// returns gorm.ErrRecordNotFound. Update paths call it inside their transaction.
func FindActiveForUpdate[T any](tx *gorm.DB, id uint) (*T, error) {
	var out T
	if err := tx.Scopes(Active, lockForUpdate).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
