package edgedist_test

import (
	"testing"

	"github.com/katalvlaran/proxnet/edgedist"
	"github.com/katalvlaran/proxnet/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDyadIDs(t *testing.T) {
	tbl := relocTable(t,
		fix{id: "A", x: 0, y: 0, tg: 1},
		fix{id: "B", x: 1, y: 0, tg: 1},
		fix{id: "C", x: 2, y: 0, tg: 1},
		fix{id: "D", x: 90, y: 0, tg: 1},
	)
	res, err := edgedist.EdgeDist(tbl, baseOpts(1.5)...)
	require.NoError(t, err)

	out, err := edgedist.DyadIDs(res.Table, edgedist.ColID1, edgedist.ColID2)
	require.NoError(t, err)
	require.Equal(t, []string{"ID1", "ID2", "timegroup", "dyadID"}, out.Names())
	assert.False(t, res.Table.Has(edgedist.ColDyadID), "input table untouched")

	// rows: A-B, B-A, B-C, C-B, D-NA
	dyads := make(map[string]table.Value)
	for row := 0; row < out.Rows(); row++ {
		a, _ := out.Value(row, "ID1")
		b, _ := out.Value(row, "ID2")
		d, _ := out.Value(row, "dyadID")
		dyads[a.String()+"-"+b.String()] = d
	}
	assert.Equal(t, table.Int(1), dyads["A-B"])
	assert.Equal(t, dyads["A-B"], dyads["B-A"])
	assert.Equal(t, table.Int(2), dyads["B-C"])
	assert.Equal(t, dyads["B-C"], dyads["C-B"])
	assert.True(t, dyads["D-NA"].IsNull())
}

func TestDyadIDs_Errors(t *testing.T) {
	tbl := table.MustNew(table.Strings("ID1", "A"), table.Strings("ID2", "B"))

	_, err := edgedist.DyadIDs(nil, "ID1", "ID2")
	require.ErrorIs(t, err, edgedist.ErrMissingInput)

	_, err = edgedist.DyadIDs(tbl, "from", "ID2")
	require.ErrorIs(t, err, edgedist.ErrColumnNotFound)

	once, err := edgedist.DyadIDs(tbl, "ID1", "ID2")
	require.NoError(t, err)
	_, err = edgedist.DyadIDs(once, "ID1", "ID2")
	require.ErrorIs(t, err, edgedist.ErrInvalidArgument)
}
