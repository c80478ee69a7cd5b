package edgedist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/proxnet/table"
)

// Output column names.
const (
	ColID1      = "ID1"
	ColID2      = "ID2"
	ColDistance = "distance"
)

// plan is a validated, column-bound view of one EdgeDist call.
type plan struct {
	id      *table.Column
	xs, ys  []float64
	keyCols []*table.Column // timegroup first, then splitBy
}

// validate checks the call before any computation and binds its columns.
// Checks run in a fixed order and the first failure wins:
//
//	table → threshold presence → threshold value → id → coords arity →
//	timegroup presence → column existence → grouping names → coordinate types.
//
// Warnings are collected only once the call is known to be valid.
func validate(tbl *table.Table, c config) (*plan, []Warning, error) {
	// Stage 1 (Arguments): presence and shape of every argument.
	if tbl == nil {
		return nil, nil, &MissingInputError{Arg: "table"}
	}
	if !c.hasThreshold {
		return nil, nil, &MissingInputError{Arg: "threshold"}
	}
	if math.IsNaN(c.threshold) || math.IsInf(c.threshold, 0) {
		return nil, nil, &InvalidArgumentError{Arg: "threshold", Reason: fmt.Sprintf("must be a finite number, got %g", c.threshold)}
	}
	if c.threshold <= 0 {
		return nil, nil, &InvalidArgumentError{Arg: "threshold", Reason: fmt.Sprintf("must be > 0, got %g", c.threshold)}
	}
	if c.id == "" {
		return nil, nil, &MissingInputError{Arg: "id"}
	}
	if len(c.coords) != 2 {
		return nil, nil, &InvalidArgumentError{Arg: "coords", Reason: fmt.Sprintf("need exactly 2 column names (x, y), got %d", len(c.coords))}
	}
	if !c.hasTimegroup {
		return nil, nil, &MissingInputError{Arg: "timegroup"}
	}

	// Stage 2 (Schema): every named column must exist.
	named := append([]string{c.id}, c.coords...)
	if c.timegroup != "" {
		named = append(named, c.timegroup)
	}
	named = append(named, c.splitBy...)
	var missing []string
	seen := make(map[string]bool, len(named))
	for _, name := range named {
		if !tbl.Has(name) && !seen[name] {
			missing = append(missing, name)
		}
		seen[name] = true
	}
	if len(missing) > 0 {
		return nil, nil, &ColumnNotFoundError{Columns: missing}
	}

	keyNames := c.splitBy
	if c.timegroup != "" {
		keyNames = append([]string{c.timegroup}, c.splitBy...)
	}
	if err := checkKeyNames(c.id, keyNames); err != nil {
		return nil, nil, err
	}

	// Stage 3 (Types): coordinates must be numeric (and finite when strict).
	p := &plan{}
	p.id, _ = tbl.Column(c.id)
	coords := make([][]float64, 2)
	for i, name := range c.coords {
		col, _ := tbl.Column(name)
		if !col.Kind().IsNumeric() {
			return nil, nil, &TypeMismatchError{Column: name, Kind: col.Kind(), Reason: "coordinates must be numeric"}
		}
		coords[i] = col.Float64s()
		if c.strictCoords {
			for row, v := range coords[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, nil, &TypeMismatchError{Column: name, Kind: col.Kind(), Reason: fmt.Sprintf("row %d is null or not finite", row)}
				}
			}
		}
	}
	p.xs, p.ys = coords[0], coords[1]
	for _, name := range keyNames {
		col, _ := tbl.Column(name)
		p.keyCols = append(p.keyCols, col)
	}

	// Stage 4 (Diagnostics): non-fatal warnings.
	var warnings []Warning
	if c.timegroup != "" {
		tg, _ := tbl.Column(c.timegroup)
		if k := tg.Kind(); k == table.KindString || k.IsTemporal() {
			warnings = append(warnings, SuspiciousTypeWarning{Column: c.timegroup, Kind: k})
		}
	}
	if w, ok := duplicateEntities(tbl.Rows(), p.id, p.keyCols); ok {
		warnings = append(warnings, w)
	}

	return p, warnings, nil
}

// checkKeyNames rejects grouping columns that would collide in the output
// table: repeats, the id column, and the reserved output names.
func checkKeyNames(id string, keyNames []string) error {
	reserved := map[string]bool{ColID1: true, ColID2: true, ColDistance: true, id: true}
	for _, name := range keyNames {
		if reserved[name] {
			return &InvalidArgumentError{Arg: "splitBy", Reason: fmt.Sprintf("grouping column %q clashes with the id or an output column", name)}
		}
		reserved[name] = true
	}
	return nil
}

// duplicateEntities counts (id, group) combinations with more than one row.
func duplicateEntities(n int, id *table.Column, keyCols []*table.Column) (DuplicateEntityWarning, bool) {
	counts := make(map[string]int, n)
	cols := append([]*table.Column{id}, keyCols...)
	for row := 0; row < n; row++ {
		counts[encodeKey(cols, row)]++
	}

	w := DuplicateEntityWarning{GroupBy: make([]string, len(cols))}
	for i, c := range cols {
		w.GroupBy[i] = c.Name()
	}
	for _, cnt := range counts {
		if cnt > 1 {
			w.Combinations++
			w.Rows += cnt
		}
	}

	return w, w.Combinations > 0
}
