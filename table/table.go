package table

import (
	"fmt"
)

// Table is an ordered collection of equally long, uniquely named columns.
// A Table is never mutated after construction; operations that add
// columns return a new Table sharing the existing ones.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New assembles a table from columns.
// Stage 1 (Validate): reject duplicate names and ragged lengths.
// Stage 2 (Finalize): index columns by name.
// Complexity: O(C).
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.name, ErrDuplicateColumn)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.name, c.Len(), t.rows, ErrRaggedColumns)
		}
		t.index[c.name] = i
		t.cols = append(t.cols, c)
	}

	return t, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(cols ...*Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// Columns returns the columns in order. The slice is a copy; the columns are shared.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Has reports whether the table holds a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Value returns the cell at (row, name).
func (t *Table) Value(row int, name string) (Value, error) {
	c, ok := t.Column(name)
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	if row < 0 || row >= t.rows {
		return Value{}, fmt.Errorf("row %d of %d: %w", row, t.rows, ErrRowOutOfRange)
	}

	return c.values[row], nil
}

// WithColumn returns a new table holding t's columns followed by c.
func (t *Table) WithColumn(c *Column) (*Table, error) {
	cols := append(t.Columns(), c)
	return New(cols...)
}
