// Package record holds the pieces every school record shares: the soft-delete
// status flag, the error taxonomy and calendar-date helpers.
package record

// Status is the soft-delete flag carried by every table.
type Status string

const (
	// StatusActive marks a row visible to default reads.
	StatusActive Status = "Active"
	// StatusInactive marks a deactivated row. Rows are never physically removed.
	StatusInactive Status = "Inactive"
)

// ColumnStatus is the column name of the status flag on every table.
const ColumnStatus = "record_status"

// IsActive reports whether s is the Active status.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// Valid reports whether s is one of the two known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
