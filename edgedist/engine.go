package edgedist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/proxnet/gridindex"
	"github.com/katalvlaran/proxnet/matrix"
	"golang.org/x/sync/errgroup"
)

// gridSlack widens grid cells slightly past the threshold so that rounding
// in x/size near a cell border can never push a qualifying pair two cells apart.
const gridSlack = 1 + 1e-9

// pairFinder returns every ordered local index pair (i, j), i ≠ j, of one
// group with distance strictly below threshold, sorted row-major.
type pairFinder func(xs, ys []float64, threshold float64) ([]matrix.Pair, error)

// densePairs is the reference engine: full n×n matrix, full scan.
func densePairs(xs, ys []float64, threshold float64) ([]matrix.Pair, error) {
	if len(xs) < 2 {
		return nil, nil
	}
	m, err := matrix.EuclideanDistances(xs, ys)
	if err != nil {
		return nil, err
	}

	return m.PairsBelow(threshold), nil
}

// gridPairs selects the same pairs through a uniform grid. Groups that
// cannot be bucketed exactly (huge coordinates, or a threshold so large the
// widened cell overflows) fall back to the dense engine.
func gridPairs(xs, ys []float64, threshold float64) ([]matrix.Pair, error) {
	if len(xs) < 2 {
		return nil, nil
	}
	ix, err := gridindex.New(xs, ys, threshold*gridSlack)
	if errors.Is(err, gridindex.ErrCellOverflow) || errors.Is(err, gridindex.ErrInvalidCellSize) {
		return densePairs(xs, ys, threshold)
	}
	if err != nil {
		return nil, err
	}

	return ix.PairsWithin(threshold)
}

// engineName labels the active engine in logs.
func engineName(c config) string {
	if c.spatialIndex {
		return "grid"
	}
	return "dense"
}

// matchGroups runs the pair finder over every group and returns, per group
// and in group order, the matched local pairs. With parallelism > 1 groups
// run concurrently; each writes only its own slot, so the result is
// identical to a sequential run.
func matchGroups(groups []group, p *plan, c config) ([][]matrix.Pair, error) {
	find := pairFinder(densePairs)
	if c.spatialIndex {
		find = gridPairs
	}
	out := make([][]matrix.Pair, len(groups))

	run := func(gi int) error {
		g := groups[gi]
		xs, ys := make([]float64, len(g.rows)), make([]float64, len(g.rows))
		for i, row := range g.rows {
			xs[i], ys[i] = p.xs[row], p.ys[row]
		}
		pairs, err := find(xs, ys, c.threshold)
		if err != nil {
			return fmt.Errorf("group %s: %w", g.key, err)
		}
		c.logger.LogGroup(g.key, len(g.rows), len(pairs))
		out[gi] = pairs
		return nil
	}

	if c.parallelism <= 1 || len(groups) < 2 {
		for gi := range groups {
			if err := run(gi); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	var eg errgroup.Group
	eg.SetLimit(c.parallelism)
	for gi := range groups {
		gi := gi
		eg.Go(func() error { return run(gi) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
