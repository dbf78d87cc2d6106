package enumerator

import (
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
)

// CostScratch is a per-worker mutable link-cost vector: BFS-LE resets and
// re-bans it once per queue entry, Link-Penalisation mutates it in place
// across an entire OD call. Allocated once per worker (spec.md §5) and
// reused across ODs, the same discipline as pathfinder.Scratch.
type CostScratch struct {
	values []float64
}

// NewCostScratch allocates a CostScratch sized for a graph with nLinks
// compact links.
func NewCostScratch(nLinks int32) *CostScratch {
	return &CostScratch{values: make([]float64, nLinks)}
}

// ResetFrom copies g's base per-link costs back into the scratch,
// discarding any bans or penalties applied by a previous call.
func (c *CostScratch) ResetFrom(g *netgraph.Graph) {
	for link := int32(0); link < g.NumLinks(); link++ {
		c.values[link] = g.Cost(link)
	}
}

// Ban marks link impassable for the current query.
func (c *CostScratch) Ban(link int32) {
	c.values[link] = pathfinder.Unreachable
}

// Penalize multiplies link's cost by factor, leaving already-banned links
// untouched (Unreachable * anything finite stays >= Unreachable).
func (c *CostScratch) Penalize(link int32, factor float64) {
	if c.values[link] < pathfinder.Unreachable {
		c.values[link] *= factor
	}
}

// Values exposes the scratch's current cost vector, passed straight to
// pathfinder.Solver.FindPath.
func (c *CostScratch) Values() []float64 { return c.values }
