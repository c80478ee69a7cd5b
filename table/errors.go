package table

import "errors"

// Sentinel errors for table operations. Call sites wrap them with
// fmt.Errorf("...: %w", ErrX) to add the column or row in question.
var (
	// ErrKindMismatch indicates a value whose kind differs from its column's kind.
	ErrKindMismatch = errors.New("table: value kind does not match column kind")

	// ErrDuplicateColumn indicates two columns with the same name in one table.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrRaggedColumns indicates columns of differing lengths in one table.
	ErrRaggedColumns = errors.New("table: columns have different lengths")

	// ErrColumnNotFound indicates a lookup of a column the table does not hold.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrRowOutOfRange indicates a row index outside the table.
	ErrRowOutOfRange = errors.New("table: row index out of range")

	// ErrEmptyCSV indicates CSV input without a header record.
	ErrEmptyCSV = errors.New("table: csv input has no header")
)
