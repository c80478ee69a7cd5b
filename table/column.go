package table

import (
	"fmt"
)

// Column is a named vector of values sharing one Kind.
type Column struct {
	name   string
	kind   Kind
	values []Value
}

// NewColumn builds a column of the given kind from values.
// Int values are widened into float columns; nulls adopt the column kind.
// Returns ErrKindMismatch (wrapped) on the first incompatible value.
func NewColumn(name string, kind Kind, values ...Value) (*Column, error) {
	c := &Column{name: name, kind: kind, values: make([]Value, 0, len(values))}
	for _, v := range values {
		if err := c.Append(v); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Ints builds an int column.
func Ints(name string, vs ...int64) *Column {
	c := &Column{name: name, kind: KindInt, values: make([]Value, len(vs))}
	for i, v := range vs {
		c.values[i] = Int(v)
	}
	return c
}

// Floats builds a float column. NaN entries are stored as nulls.
func Floats(name string, vs ...float64) *Column {
	c := &Column{name: name, kind: KindFloat, values: make([]Value, len(vs))}
	for i, v := range vs {
		if v != v {
			c.values[i] = Null(KindFloat)
			continue
		}
		c.values[i] = Float(v)
	}
	return c
}

// Strings builds a string column.
func Strings(name string, vs ...string) *Column {
	c := &Column{name: name, kind: KindString, values: make([]Value, len(vs))}
	for i, v := range vs {
		c.values[i] = String(v)
	}
	return c
}

// Bools builds a bool column.
func Bools(name string, vs ...bool) *Column {
	c := &Column{name: name, kind: KindBool, values: make([]Value, len(vs))}
	for i, v := range vs {
		c.values[i] = Bool(v)
	}
	return c
}

// Append adds v to the end of the column.
func (c *Column) Append(v Value) error {
	switch {
	case v.null:
		c.values = append(c.values, Null(c.kind))
	case v.kind == c.kind:
		c.values = append(c.values, v)
	case v.kind == KindInt && c.kind == KindFloat:
		c.values = append(c.values, Float(float64(v.i)))
	default:
		return fmt.Errorf("column %q (%s) got %s: %w", c.name, c.kind, v.kind, ErrKindMismatch)
	}

	return nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of values.
func (c *Column) Len() int { return len(c.values) }

// At returns the value at row i. It panics if i is out of range, like a slice index.
func (c *Column) At(i int) Value { return c.values[i] }

// Values returns a copy of the column's values.
func (c *Column) Values() []Value {
	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// Float64s returns the numeric payloads of the column, NaN for nulls.
// Non-numeric columns yield all NaN.
func (c *Column) Float64s() []float64 {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i], _ = v.Float64()
	}
	return out
}
