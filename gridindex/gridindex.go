package gridindex

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/proxnet/matrix"
)

// maxCell bounds |x/s| so that floor(x/s) converts to int64 exactly and the
// ±1 neighbour offsets cannot overflow.
const maxCell = 1 << 52

// neighborOffsets lists the cell itself followed by its 8 neighbours:
// N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [9][2]int64{
	{0, 0}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// cellKey addresses one grid cell.
type cellKey struct{ cx, cy int64 }

// Index is an immutable uniform-grid bucketing of planar points.
// Point i keeps its input position i in every reported Pair.
type Index struct {
	size    float64
	xs, ys  []float64
	cells   map[cellKey][]int // point indices, ascending
	skipped int               // points with non-finite coordinates
}

// New buckets the points (xs[i], ys[i]) into cells of side size.
// The coordinate slices are retained, not copied; callers must not mutate them.
// Complexity: O(n) time and memory.
func New(xs, ys []float64, size float64) (*Index, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("New: %d x vs %d y: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("New(size=%g): %w", size, ErrInvalidCellSize)
	}

	ix := &Index{size: size, xs: xs, ys: ys, cells: make(map[cellKey][]int)}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			ix.skipped++
			continue
		}
		k, err := ix.cellOf(xs[i], ys[i])
		if err != nil {
			return nil, fmt.Errorf("New: point %d: %w", i, err)
		}
		ix.cells[k] = append(ix.cells[k], i)
	}

	return ix, nil
}

// Len returns the number of indexed (finite) points.
func (ix *Index) Len() int { return len(ix.xs) - ix.skipped }

// Skipped returns the number of points left out for non-finite coordinates.
func (ix *Index) Skipped() int { return ix.skipped }

// CellSize returns the side of one grid cell.
func (ix *Index) CellSize() float64 { return ix.size }

func (ix *Index) cellOf(x, y float64) (cellKey, error) {
	fx, fy := math.Floor(x/ix.size), math.Floor(y/ix.size)
	if math.Abs(fx) > maxCell || math.Abs(fy) > maxCell {
		return cellKey{}, fmt.Errorf("(%g,%g) at cell size %g: %w", x, y, ix.size, ErrCellOverflow)
	}
	return cellKey{cx: int64(fx), cy: int64(fy)}, nil
}

// PairsWithin returns every ordered pair (i, j), i ≠ j, whose distance is
// strictly below threshold, sorted by (Row, Col).
// Stage 1 (Validate): threshold ≤ cell size, so neighbours suffice.
// Stage 2 (Execute): scan the 3×3 neighbourhood of each point.
// Stage 3 (Finalize): sort to row-major order.
// A NaN or non-positive threshold selects nothing.
func (ix *Index) PairsWithin(threshold float64) ([]matrix.Pair, error) {
	if threshold > ix.size {
		return nil, fmt.Errorf("PairsWithin(%g) with cell size %g: %w", threshold, ix.size, ErrThresholdTooLarge)
	}
	if !(threshold > 0) {
		return nil, nil
	}

	var out []matrix.Pair
	for i := range ix.xs {
		x, y := ix.xs[i], ix.ys[i]
		if !finite(x) || !finite(y) {
			continue
		}
		home, _ := ix.cellOf(x, y) // already validated in New
		for _, off := range neighborOffsets {
			for _, j := range ix.cells[cellKey{cx: home.cx + off[0], cy: home.cy + off[1]}] {
				if j == i {
					continue
				}
				if d := matrix.Euclidean(x, y, ix.xs[j], ix.ys[j]); d < threshold {
					out = append(out, matrix.Pair{Row: i, Col: j, Value: d})
				}
			}
		}
	}
	slices.SortFunc(out, func(a, b matrix.Pair) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
