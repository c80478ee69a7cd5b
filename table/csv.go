package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVOption configures ReadCSV and WriteCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	delimiter  rune
	nullTokens map[string]struct{}
	kinds      map[string]Kind
}

// Default CSV settings.
const (
	DefaultDelimiter = ','
)

// WithDelimiter sets the field delimiter (default ',').
func WithDelimiter(r rune) CSVOption {
	return func(o *csvOptions) { o.delimiter = r }
}

// WithNullTokens replaces the set of cell texts read as null (default "" and "NA").
func WithNullTokens(tokens ...string) CSVOption {
	return func(o *csvOptions) {
		o.nullTokens = make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			o.nullTokens[tok] = struct{}{}
		}
	}
}

// WithColumnKind forces the kind of a column instead of inferring it.
func WithColumnKind(name string, k Kind) CSVOption {
	return func(o *csvOptions) { o.kinds[name] = k }
}

func gatherCSVOptions(opts []CSVOption) csvOptions {
	o := csvOptions{
		delimiter:  DefaultDelimiter,
		nullTokens: map[string]struct{}{"": {}, NullToken: {}},
		kinds:      map[string]Kind{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// inferenceOrder lists kinds from most to least specific. A column takes the
// first kind every non-null cell parses as; KindString always succeeds.
var inferenceOrder = []Kind{KindInt, KindFloat, KindDateTime, KindDate, KindBool, KindString}

// ReadCSV reads a header plus records and infers one Kind per column.
// Stage 1 (Read): load all records.
// Stage 2 (Infer): pick the narrowest kind per column.
// Stage 3 (Build): parse cells into typed columns.
// Complexity: O(R·C·K) where K is the number of candidate kinds.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	o := gatherCSVOptions(opts)
	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}
	header, body := records[0], records[1:]

	cols := make([]*Column, len(header))
	for j, name := range header {
		name = strings.TrimSpace(name)
		kind, forced := o.kinds[name]
		if !forced {
			kind = inferKind(body, j, o.nullTokens)
		}
		c := &Column{name: name, kind: kind, values: make([]Value, 0, len(body))}
		for i, rec := range body {
			v, err := parseCell(rec[j], kind, o.nullTokens)
			if err != nil {
				return nil, fmt.Errorf("table: csv row %d column %q: %w", i+2, name, err)
			}
			c.values = append(c.values, v)
		}
		cols[j] = c
	}

	return New(cols...)
}

func inferKind(body [][]string, j int, nulls map[string]struct{}) Kind {
	for _, k := range inferenceOrder {
		ok := true
		for _, rec := range body {
			if _, err := parseCell(rec[j], k, nulls); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return k
		}
	}
	return KindString
}

var errUnparsable = errors.New("cell does not parse as column kind")

func parseCell(s string, k Kind, nulls map[string]struct{}) (Value, error) {
	s = strings.TrimSpace(s)
	if _, isNull := nulls[s]; isNull {
		return Null(k), nil
	}
	switch k {
	case KindInt:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q as %s: %w", s, k, errUnparsable)
		}
		return Int(v), nil
	case KindFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q as %s: %w", s, k, errUnparsable)
		}
		return Float(v), nil
	case KindDateTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Value{}, fmt.Errorf("%q as %s: %w", s, k, errUnparsable)
		}
		return DateTime(t), nil
	case KindDate:
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return Value{}, fmt.Errorf("%q as %s: %w", s, k, errUnparsable)
		}
		return Date(t), nil
	case KindBool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, fmt.Errorf("%q as %s: %w", s, k, errUnparsable)
		}
		return Bool(v), nil
	default:
		return String(s), nil
	}
}

// WriteCSV writes t as a header plus one record per row.
func WriteCSV(w io.Writer, t *Table, opts ...CSVOption) error {
	o := gatherCSVOptions(opts)
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter

	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("table: write csv header: %w", err)
	}
	rec := make([]string, len(t.cols))
	for i := 0; i < t.rows; i++ {
		for j, c := range t.cols {
			rec[j] = c.values[i].String()
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("table: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
