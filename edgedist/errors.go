package edgedist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/proxnet/table"
)

// Sentinel error classes. Every validation error returned by EdgeDist
// unwraps to exactly one of them, so callers can branch with errors.Is and
// recover the details with errors.As.
var (
	// ErrMissingInput indicates a required argument was not supplied.
	ErrMissingInput = errors.New("edgedist: missing required input")

	// ErrInvalidArgument indicates an argument that is present but unusable.
	ErrInvalidArgument = errors.New("edgedist: invalid argument")

	// ErrColumnNotFound indicates named columns absent from the input table.
	ErrColumnNotFound = errors.New("edgedist: column not found")

	// ErrTypeMismatch indicates a column whose values have the wrong type.
	ErrTypeMismatch = errors.New("edgedist: column type mismatch")
)

// MissingInputError reports a required argument that was not supplied.
type MissingInputError struct {
	Arg string // "table", "threshold", "id" or "timegroup"
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("edgedist: %s required", e.Arg)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// InvalidArgumentError reports an argument that is present but semantically invalid.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("edgedist: invalid %s: %s", e.Arg, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// ColumnNotFoundError lists every named column missing from the table.
type ColumnNotFoundError struct {
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return "edgedist: columns not found in table: " + strings.Join(e.Columns, ", ")
}

func (e *ColumnNotFoundError) Unwrap() error { return ErrColumnNotFound }

// TypeMismatchError reports a column whose kind or content is unusable.
type TypeMismatchError struct {
	Column string
	Kind   table.Kind
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("edgedist: column %q (%s): %s", e.Column, e.Kind, e.Reason)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
