package edgedist

import (
	"fmt"

	"github.com/katalvlaran/proxnet/table"
)

// ColDyadID names the column added by DyadIDs.
const ColDyadID = "dyadID"

// DyadIDs returns a copy of an edge table with an extra ColDyadID column
// that labels each unordered pair of entities: (A, B) and (B, A) share one
// integer, assigned from 1 in order of first appearance. Rows where either
// endpoint is null (isolated entities) get a null dyad.
//
// Errors:
//   - *ColumnNotFoundError if id1 or id2 is absent.
//   - ErrInvalidArgument if the table already has a ColDyadID column.
//
// Complexity: O(n).
func DyadIDs(tbl *table.Table, id1, id2 string) (*table.Table, error) {
	if tbl == nil {
		return nil, &MissingInputError{Arg: "table"}
	}
	var missing []string
	for _, name := range []string{id1, id2} {
		if !tbl.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ColumnNotFoundError{Columns: missing}
	}
	if tbl.Has(ColDyadID) {
		return nil, &InvalidArgumentError{Arg: "table", Reason: fmt.Sprintf("already has a %q column", ColDyadID)}
	}

	a, _ := tbl.Column(id1)
	b, _ := tbl.Column(id2)
	dyads := make(map[[2]string]int64)
	out, err := table.NewColumn(ColDyadID, table.KindInt)
	if err != nil {
		return nil, err
	}
	for row := 0; row < tbl.Rows(); row++ {
		va, vb := a.At(row), b.At(row)
		if va.IsNull() || vb.IsNull() {
			if err := out.Append(table.Null(table.KindInt)); err != nil {
				return nil, err
			}
			continue
		}
		ka, kb := va.Key(), vb.Key()
		if kb < ka {
			ka, kb = kb, ka
		}
		pair := [2]string{ka, kb}
		id, ok := dyads[pair]
		if !ok {
			id = int64(len(dyads) + 1)
			dyads[pair] = id
		}
		if err := out.Append(table.Int(id)); err != nil {
			return nil, err
		}
	}

	return tbl.WithColumn(out)
}
