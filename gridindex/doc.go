// Package gridindex buckets planar points into a uniform grid so that
// fixed-radius neighbour pairs can be found without a full distance matrix.
//
// What:
//
//   - Index hashes every finite point into the square cell
//     (floor(x/s), floor(y/s)) of side s.
//   - PairsWithin scans each point's own cell plus its 8 neighbours (Conn8)
//     and keeps ordered pairs strictly closer than the threshold.
//
// Why:
//
//   - A single large time group costs O(n²) with a dense matrix. With cell
//     side ≥ threshold every qualifying pair lies in adjacent cells, so the
//     work drops to O(n·k) for k points per neighbourhood.
//
// Guarantees:
//
//   - Output is identical to matrix.EuclideanDistances(...).PairsBelow(t):
//     the same ordered pairs, the same distance bits (matrix.Euclidean), and
//     row-major order.
//   - Points with NaN or infinite coordinates are skipped; they never
//     qualify under the dense engine either.
//
// Complexity:
//
//   - New:         O(n) time and memory.
//   - PairsWithin: O(n·k + P·log P) for P reported pairs.
//
// Errors:
//
//   - ErrDimensionMismatch: coordinate vectors of different lengths.
//   - ErrInvalidCellSize: cell side not finite and > 0.
//   - ErrThresholdTooLarge: threshold exceeds the cell side.
//   - ErrCellOverflow: a coordinate lies too far from the origin for an
//     exact int64 cell index at this cell side.
package gridindex
