// Package edgedist builds proximity edge lists from relocation data.
//
// Given a table of fixes (entity id, planar x/y, a precomputed time group and
// optional extra split columns) and a distance threshold, EdgeDist reports,
// for every group of temporally coincident rows, each ordered pair of
// distinct entities strictly closer than the threshold:
//
//	tbl → Validator → Grouper & Distance Engine → Edge Assembler → Result
//
// What:
//
//   - Validator: fail-fast argument and schema checks (MissingInputError,
//     InvalidArgumentError, ColumnNotFoundError, TypeMismatchError) plus
//     non-fatal SuspiciousTypeWarning and DuplicateEntityWarning.
//   - Grouper & Distance Engine: partition by timegroup ∪ splitBy, then the
//     per-group Euclidean distance matrix (matrix package) or, with
//     WithSpatialIndex, a uniform grid (gridindex package) selecting the
//     same pairs.
//   - Edge Assembler: ID1, ID2, grouping columns, optional distance, and
//     null-partner rows for isolated entities when fillNA is on.
//
// Semantics:
//
//   - Strict inequality: a pair at exactly the threshold is not an edge.
//   - Both directions are emitted: (A, B, d) implies (B, A, d).
//   - Self-pairs are excluded, never thresholded.
//   - A null/NaN coordinate makes every distance involving that row
//     undefined; such pairs are left out without error unless
//     WithStrictCoordinates(true) is set.
//   - Output order is deterministic: groups in first-appearance order,
//     rows in input order within a group.
//
// Options:
//
//	WithThreshold, WithID, WithCoords, WithTimegroup / WithoutTimegroup  (required)
//	WithSplitBy, WithReturnDist, WithFillNA                             (shape)
//	WithSpatialIndex, WithParallelism, WithStrictCoordinates, WithLogger (engine)
//
// DyadIDs post-processes an edge table, labelling each unordered pair.
package edgedist
