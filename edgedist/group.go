package edgedist

import (
	"strings"

	"github.com/katalvlaran/proxnet/table"
)

// GroupKey identifies one group of temporally coincident rows. It is either
// a concrete composite key (timegroup first, then splitBy columns) or the
// Ungrouped sentinel used when no grouping column is bound.
type GroupKey struct {
	names  []string
	values []table.Value
	enc    string
}

// Ungrouped returns the key of the single implicit group.
func Ungrouped() GroupKey { return GroupKey{} }

// IsUngrouped reports whether k is the implicit single-group key.
func (k GroupKey) IsUngrouped() bool { return len(k.names) == 0 }

// Names returns the grouping column names in key order.
func (k GroupKey) Names() []string { return append([]string(nil), k.names...) }

// Values returns the key values aligned with Names.
func (k GroupKey) Values() []table.Value { return append([]table.Value(nil), k.values...) }

// Value returns the key value of the named grouping column.
func (k GroupKey) Value(name string) (table.Value, bool) {
	for i, n := range k.names {
		if n == name {
			return k.values[i], true
		}
	}
	return table.Value{}, false
}

// Equal reports whether k and o select the same group.
func (k GroupKey) Equal(o GroupKey) bool {
	return k.enc == o.enc && len(k.names) == len(o.names)
}

// String renders the key as "name=value ..." or "ungrouped".
func (k GroupKey) String() string {
	if k.IsUngrouped() {
		return "ungrouped"
	}
	parts := make([]string, len(k.names))
	for i := range k.names {
		parts[i] = k.names[i] + "=" + k.values[i].String()
	}
	return strings.Join(parts, " ")
}

// group is one partition cell: its key and the input rows it holds, ascending.
type group struct {
	key  GroupKey
	rows []int
}

// encodeKey joins the Value keys of row across cols. Value keys are
// self-delimiting, so the join is injective.
func encodeKey(cols []*table.Column, row int) string {
	var sb strings.Builder
	for i, c := range cols {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(c.At(row).Key())
	}
	return sb.String()
}

// partition splits rows [0, n) by the values of keyCols, keeping groups in
// order of first appearance and rows ascending within each group. No key
// columns yield one Ungrouped group holding every row.
// Complexity: O(n·len(keyCols)).
func partition(n int, keyCols []*table.Column) []group {
	if len(keyCols) == 0 {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return []group{{key: Ungrouped(), rows: rows}}
	}

	names := make([]string, len(keyCols))
	for i, c := range keyCols {
		names[i] = c.Name()
	}

	var groups []group
	slot := make(map[string]int)
	for row := 0; row < n; row++ {
		enc := encodeKey(keyCols, row)
		g, ok := slot[enc]
		if !ok {
			values := make([]table.Value, len(keyCols))
			for i, c := range keyCols {
				values[i] = c.At(row)
			}
			g = len(groups)
			slot[enc] = g
			groups = append(groups, group{key: GroupKey{names: names, values: values, enc: enc}})
		}
		groups[g].rows = append(groups[g].rows, row)
	}

	return groups
}
