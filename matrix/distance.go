// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Pair is one selected cell of a matrix: (Row, Col) and the stored Value.
type Pair struct {
	Row, Col int
	Value    float64
}

// Euclidean returns the planar distance sqrt((x1-x2)² + (y1-y2)²).
// The expression is symmetric bit-for-bit: swapping the points only negates
// the differences before squaring. Any NaN input yields NaN.
func Euclidean(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// EuclideanDistances builds the n×n distance matrix of n planar points.
// Implementation:
//   - Stage 1 (Validate): len(xs) == len(ys) > 0.
//   - Stage 2 (Execute): fill the upper triangle, mirror into the lower one.
//   - Stage 3 (Finalize): write the diagonal sentinel (DefaultDiagonal = NaN).
//
// Errors:
//   - ErrDimensionMismatch if the coordinate vectors differ in length.
//   - ErrInvalidDimensions if there are no points.
//
// Notes:
//   - Points with a NaN coordinate produce NaN distances; such cells never
//     satisfy an ordered comparison and are therefore never selected.
//
// Complexity: O(n²) time and memory.
func EuclideanDistances(xs, ys []float64, opts ...Option) (*Dense, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("EuclideanDistances: %d x vs %d y: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	n := len(xs)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("EuclideanDistances: %w", err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = o.diagonal
		for j = i + 1; j < n; j++ {
			d := Euclidean(xs[i], ys[i], xs[j], ys[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// PairsBelow scans the full matrix in row-major order and returns every cell
// with value strictly less than threshold. Both (i,j) and (j,i) of a
// symmetric matrix are reported. NaN cells (and a NaN threshold) never match.
// Complexity: O(r*c).
func (m *Dense) PairsBelow(threshold float64) []Pair {
	var out []Pair
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j = 0; j < m.c; j++ {
			if row[j] < threshold {
				out = append(out, Pair{Row: i, Col: j, Value: row[j]})
			}
		}
	}

	return out
}
