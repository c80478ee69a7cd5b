package edgedist

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/proxnet/table"
)

// Warning is a non-fatal diagnostic found during validation. Warnings never
// change the computed edges; they are returned in Result.Warnings and logged.
type Warning interface {
	// Warning returns a human-readable description.
	Warning() string
}

// SuspiciousTypeWarning flags a timegroup column holding text or temporal
// values instead of an opaque integer group label, which usually means the
// upstream time-grouping step was skipped.
type SuspiciousTypeWarning struct {
	Column string
	Kind   table.Kind
}

func (w SuspiciousTypeWarning) Warning() string {
	return fmt.Sprintf("timegroup column %q is of kind %s; did you pass the raw timestamp instead of a time group?", w.Column, w.Kind)
}

// DuplicateEntityWarning flags (id, splitBy, timegroup) combinations holding
// more than one row, which points at a sampling rate finer than the
// time-grouping threshold used upstream.
type DuplicateEntityWarning struct {
	// Combinations is the number of (id, group) combinations with more than one row.
	Combinations int
	// Rows is the total number of rows in those combinations.
	Rows int
	// GroupBy names the columns of the checked key, id first.
	GroupBy []string
}

func (w DuplicateEntityWarning) Warning() string {
	return fmt.Sprintf("found %d duplicate id combination(s) over %d row(s) grouping by (%s); does the time-group threshold match the fix rate?",
		w.Combinations, w.Rows, strings.Join(w.GroupBy, ", "))
}
