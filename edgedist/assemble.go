package edgedist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/proxnet/matrix"
	"github.com/katalvlaran/proxnet/table"
)

// Edge is one output row: a directional pair of entities within a group.
// Isolated edges carry a null ID2 (and a NaN Distance): the entity had no
// partner in its group.
type Edge struct {
	ID1, ID2 table.Value
	Group    GroupKey
	Distance float64
	Isolated bool
}

// edgeColumns accumulates output columns in their fixed order:
// ID1, ID2, grouping columns, then distance when requested.
type edgeColumns struct {
	id1, id2 *table.Column
	keys     []*table.Column
	dist     *table.Column
}

func newEdgeColumns(idKind table.Kind, keyCols []*table.Column, returnDist bool) (*edgeColumns, error) {
	ec := &edgeColumns{}
	var err error
	if ec.id1, err = table.NewColumn(ColID1, idKind); err != nil {
		return nil, err
	}
	if ec.id2, err = table.NewColumn(ColID2, idKind); err != nil {
		return nil, err
	}
	for _, kc := range keyCols {
		col, err := table.NewColumn(kc.Name(), kc.Kind())
		if err != nil {
			return nil, err
		}
		ec.keys = append(ec.keys, col)
	}
	if returnDist {
		if ec.dist, err = table.NewColumn(ColDistance, table.KindFloat); err != nil {
			return nil, err
		}
	}

	return ec, nil
}

func (ec *edgeColumns) add(e Edge) error {
	if err := ec.id1.Append(e.ID1); err != nil {
		return err
	}
	if err := ec.id2.Append(e.ID2); err != nil {
		return err
	}
	for i, v := range e.Group.values {
		if err := ec.keys[i].Append(v); err != nil {
			return err
		}
	}
	if ec.dist == nil {
		return nil
	}
	if e.Isolated {
		return ec.dist.Append(table.Null(table.KindFloat))
	}

	return ec.dist.Append(table.Float(e.Distance))
}

func (ec *edgeColumns) build() (*table.Table, error) {
	cols := append([]*table.Column{ec.id1, ec.id2}, ec.keys...)
	if ec.dist != nil {
		cols = append(cols, ec.dist)
	}
	return table.New(cols...)
}

// assemble turns matched local pairs into edges and the output table.
// Within each group, rows are visited in input order; each row contributes
// its matches (partner index ascending) and, when fillNA is set and its id
// matched nowhere in the group, one isolated edge the first time that id is
// seen. Duplicate ids therefore yield at most one isolated edge per group.
// Complexity: O(n + P) for n rows and P matched pairs.
func assemble(groups []group, matches [][]matrix.Pair, p *plan, c config) ([]Edge, *table.Table, error) {
	ec, err := newEdgeColumns(p.id.Kind(), p.keyCols, c.returnDist)
	if err != nil {
		return nil, nil, fmt.Errorf("edgedist: assemble: %w", err)
	}
	nullID := table.Null(p.id.Kind())

	var edges []Edge
	for gi, g := range groups {
		pairs := matches[gi]

		matched := make(map[string]bool)
		for _, pr := range pairs {
			matched[p.id.At(g.rows[pr.Row]).Key()] = true
		}
		filled := make(map[string]bool)

		next := 0 // cursor into pairs; they are sorted by Row
		for local, row := range g.rows {
			id := p.id.At(row)
			for next < len(pairs) && pairs[next].Row == local {
				pr := pairs[next]
				edges = append(edges, Edge{
					ID1:      id,
					ID2:      p.id.At(g.rows[pr.Col]),
					Group:    g.key,
					Distance: pr.Value,
				})
				next++
			}
			if !c.fillNA {
				continue
			}
			if k := id.Key(); !matched[k] && !filled[k] {
				filled[k] = true
				edges = append(edges, Edge{
					ID1:      id,
					ID2:      nullID,
					Group:    g.key,
					Distance: math.NaN(),
					Isolated: true,
				})
			}
		}
	}

	for _, e := range edges {
		if err := ec.add(e); err != nil {
			return nil, nil, fmt.Errorf("edgedist: assemble: %w", err)
		}
	}
	out, err := ec.build()
	if err != nil {
		return nil, nil, fmt.Errorf("edgedist: assemble: %w", err)
	}

	return edges, out, nil
}
