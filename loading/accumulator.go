package loading

import (
	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/netgraph"
)

// Accumulator is one worker's private link-loading state: a dense total
// load per demand column, a dense select-link load per (query, column),
// and a sparse select-link OD buffer per (query, column). Allocated once
// per worker at batch start (spec.md §5) and never shared; Reduce folds
// every worker's Accumulator into one Result after the parallel region
// ends.
type Accumulator struct {
	nNetworkLinks int

	total        map[string][]float64
	selectLink   map[string]map[string][]float64
	selectLinkOD map[string]map[string]*cooBuffer
}

// NewAccumulator allocates an Accumulator sized for nNetworkLinks network
// links, one dense vector per column in columns, and one set of
// select-link buffers per query in queries.
func NewAccumulator(nNetworkLinks int, columns []string, queries []SelectLinkQuery) *Accumulator {
	a := &Accumulator{
		nNetworkLinks: nNetworkLinks,
		total:         make(map[string][]float64, len(columns)),
		selectLink:    make(map[string]map[string][]float64, len(queries)),
		selectLinkOD:  make(map[string]map[string]*cooBuffer, len(queries)),
	}
	for _, c := range columns {
		a.total[c] = make([]float64, nNetworkLinks)
	}
	for _, q := range queries {
		cols := make(map[string][]float64, len(columns))
		odCols := make(map[string]*cooBuffer, len(columns))
		for _, c := range columns {
			cols[c] = make([]float64, nNetworkLinks)
			odCols[c] = newCOOBuffer()
		}
		a.selectLink[q.Name] = cols
		a.selectLinkOD[q.Name] = odCols
	}
	return a
}

// Accumulate folds one route's contribution for one OD into a, per
// spec.md §4.6: for every demand column, load = prob * demand is added to
// every network link the route expands to (total), and, for every query
// route satisfies, the same load is added to that query's select-link
// vector and OD buffer. A zero probability or zero demand is skipped —
// common when an OD's route set was fully masked (spec.md §4.5 item 2).
func (a *Accumulator) Accumulate(
	originID, destinationID int64,
	route enumerator.Route,
	prob float64,
	demand map[string]float64,
	g *netgraph.Graph,
	queries []SelectLinkQuery,
) {
	if prob == 0 {
		return
	}
	netIDs := g.ExpandRoute(route)

	for col, d := range demand {
		if d == 0 {
			continue
		}
		vec, ok := a.total[col]
		if !ok {
			continue
		}
		load := prob * d
		for _, nid := range netIDs {
			vec[nid] += load
		}
	}

	for _, q := range queries {
		if !q.Matches(route) {
			continue
		}
		cols := a.selectLink[q.Name]
		odCols := a.selectLinkOD[q.Name]
		for col, d := range demand {
			if d == 0 {
				continue
			}
			load := prob * d
			if vec, ok := cols[col]; ok {
				for _, nid := range netIDs {
					vec[nid] += load
				}
			}
			if buf, ok := odCols[col]; ok {
				buf.Add(originID, destinationID, load)
			}
		}
	}
}
