package edgedist_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/proxnet/edgedist"
)

// sink to defeat dead-code elimination
var sinkR *edgedist.Result

// BenchmarkEdgeDist compares engines on many small groups and on one large group.
func BenchmarkEdgeDist(b *testing.B) {
	shapes := []struct {
		name             string
		groups, perGroup int
	}{
		{"many-small", 500, 30},
		{"one-large", 1, 2000},
	}
	engines := map[string][]edgedist.Option{
		"dense":    nil,
		"grid":     {edgedist.WithSpatialIndex(true)},
		"parallel": {edgedist.WithParallelism(0)},
	}
	for _, s := range shapes {
		tbl := randomRelocs(b, 42, s.groups, s.perGroup)
		for name, extra := range engines {
			b.Run(fmt.Sprintf("%s/%s", s.name, name), func(b *testing.B) {
				opts := baseOpts(25, extra...)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, err := edgedist.EdgeDist(tbl, opts...)
					if err != nil {
						b.Fatal(err)
					}
					sinkR = res
				}
			})
		}
	}
}
