package edgedist_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/proxnet/edgedist"
	"github.com/katalvlaran/proxnet/table"
	"github.com/stretchr/testify/require"
)

// fix is one relocation row used to build fixtures.
type fix struct {
	id   string
	x, y float64
	tg   int64
	herd string
}

// relocTable builds an ID/X/Y/timegroup/herd table from fixes.
func relocTable(t testing.TB, fixes ...fix) *table.Table {
	t.Helper()
	ids := make([]string, len(fixes))
	xs := make([]float64, len(fixes))
	ys := make([]float64, len(fixes))
	tgs := make([]int64, len(fixes))
	herds := make([]string, len(fixes))
	for i, f := range fixes {
		ids[i], xs[i], ys[i], tgs[i], herds[i] = f.id, f.x, f.y, f.tg, f.herd
	}
	tbl, err := table.New(
		table.Strings("ID", ids...),
		table.Floats("X", xs...),
		table.Floats("Y", ys...),
		table.Ints("timegroup", tgs...),
		table.Strings("herd", herds...),
	)
	require.NoError(t, err)
	return tbl
}

// baseOpts binds the fixture columns with the given threshold.
func baseOpts(threshold float64, extra ...edgedist.Option) []edgedist.Option {
	return append([]edgedist.Option{
		edgedist.WithThreshold(threshold),
		edgedist.WithID("ID"),
		edgedist.WithCoords("X", "Y"),
		edgedist.WithTimegroup("timegroup"),
	}, extra...)
}

// randomRelocs builds a table of nGroups time groups with up to perGroup
// entities each; ids are unique within a group.
func randomRelocs(t testing.TB, seed int64, nGroups, perGroup int) *table.Table {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	var fixes []fix
	for g := 0; g < nGroups; g++ {
		n := 1 + r.Intn(perGroup)
		for i := 0; i < n; i++ {
			fixes = append(fixes, fix{
				id:   fmt.Sprintf("e%02d", i),
				x:    r.Float64() * 500,
				y:    r.Float64() * 500,
				tg:   int64(g),
				herd: []string{"north", "south"}[r.Intn(2)],
			})
		}
	}
	// shuffle so groups interleave in input order
	r.Shuffle(len(fixes), func(i, j int) { fixes[i], fixes[j] = fixes[j], fixes[i] })
	return relocTable(t, fixes...)
}

// edgeKey renders an edge as "group|ID1|ID2" for set comparisons.
func edgeKey(e edgedist.Edge) string {
	return e.Group.String() + "|" + e.ID1.String() + "|" + e.ID2.String()
}
