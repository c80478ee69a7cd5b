// Package matrix offers the dense numeric core of proxnet.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - EuclideanDistances: the n×n planar distance matrix of n points, with a
//     NaN diagonal so self-pairs never qualify.
//   - PairsBelow: every (row, col) cell strictly under a threshold, in
//     row-major order.
//
// Matrices are best for per-group point counts where O(n²) memory and time
// are acceptable; see package gridindex for a sparse alternative that
// selects the same pairs.
package matrix
