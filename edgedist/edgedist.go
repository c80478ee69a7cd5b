package edgedist

import (
	"github.com/katalvlaran/proxnet/table"
)

// Result is the outcome of EdgeDist.
type Result struct {
	// Table holds ID1, ID2, the grouping columns (timegroup, then splitBy)
	// and, when requested, distance.
	Table *table.Table

	// Edges is the typed view of Table, row for row.
	Edges []Edge

	// Warnings lists the non-fatal diagnostics raised during validation.
	Warnings []Warning

	// Groups is the number of groups the input was partitioned into.
	Groups int
}

// Isolated returns the number of null-partner edges.
func (r *Result) Isolated() int {
	n := 0
	for _, e := range r.Edges {
		if e.Isolated {
			n++
		}
	}
	return n
}

// EdgeDist builds the proximity edge list of tbl: within every group of rows
// sharing the timegroup and splitBy values, each ordered pair of distinct
// rows closer than the threshold becomes an edge (ID1, ID2).
//
// Required options: WithThreshold, WithID, WithCoords (two columns), and
// WithTimegroup or WithoutTimegroup.
//
// Stage 1 (Validate): arguments, schema and coordinate types; all errors
// are returned before any distance is computed and no partial result is
// produced.
// Stage 2 (Group): partition rows by the composite key.
// Stage 3 (Match): per group, select ordered pairs with distance < threshold.
// Stage 4 (Assemble): build edges, optionally reinstating isolated entities.
//
// Pairs involving a null or NaN coordinate have an undefined distance and are
// silently left out (no edge), unless WithStrictCoordinates(true) turns them
// into a TypeMismatchError up front.
//
// Complexity: O(Σ nᵍ²) time and O(max nᵍ²) memory per worker with the dense
// engine, for group sizes nᵍ.
func EdgeDist(tbl *table.Table, opts ...Option) (*Result, error) {
	c := gatherOptions(opts...)
	log := c.logger
	if c.hasThreshold {
		log = log.WithThreshold(c.threshold)
	}
	c.logger = log

	p, warnings, err := validate(tbl, c)
	if err != nil {
		log.LogRejected(err)
		return nil, err
	}
	for _, w := range warnings {
		log.LogWarning(w)
	}

	groups := partition(tbl.Rows(), p.keyCols)
	log.LogValidated(tbl.Rows(), len(groups), engineName(c))

	matches, err := matchGroups(groups, p, c)
	if err != nil {
		return nil, err
	}

	edges, out, err := assemble(groups, matches, p, c)
	if err != nil {
		return nil, err
	}

	res := &Result{Table: out, Edges: edges, Warnings: warnings, Groups: len(groups)}
	log.LogCompleted(len(edges), res.Isolated())

	return res, nil
}
