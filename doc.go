// Package proxnet builds proximity-based social networks from animal
// relocation data.
//
// Given a table of fixes (one row per individual per moment) and a distance
// threshold, proxnet pairs individuals observed in the same time group whose
// fixes lie strictly closer than the threshold, and returns the directed
// edge list that downstream network analysis consumes.
//
// Everything is organized under subpackages:
//
//	table/        typed columnar tables, CSV input and output
//	matrix/       dense float64 matrices, pairwise Euclidean distances
//	gridindex/    uniform grid spatial index for sparse proximity queries
//	edgedist/     validation, grouping, pair finding and edge list assembly
//	cmd/proxnet/  command-line front end
//
// Quick example:
//
//	res, err := edgedist.EdgeDist(relocs,
//		edgedist.WithThreshold(50),
//		edgedist.WithID("ID"),
//		edgedist.WithCoords("X", "Y"),
//		edgedist.WithTimegroup("timegroup"),
//		edgedist.WithSplitBy("herd"),
//		edgedist.WithReturnDist(true),
//	)
//
// res.Table holds columns ID1, ID2, timegroup, herd and distance. Both
// directions of every pair appear, and individuals without a partner keep
// a row with a null ID2 unless WithFillNA(false) is given.
package proxnet
