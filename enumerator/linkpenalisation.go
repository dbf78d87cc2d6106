package enumerator

import (
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
)

// LinkPenalisation is the single-queue enumeration strategy of spec.md
// §4.3.2: one mutable cost vector, repeatedly penalized on every link a
// found route uses (whether or not that route is new), until MaxRoutes,
// MaxDepth, MaxMisses (consecutive duplicates), or unreachability stops
// it. Grounded on dijkstra/dijkstra.go's single-runner loop shape, reused
// here across iterations instead of per-call.
type LinkPenalisation struct{}

// Enumerate implements Strategy.
func (LinkPenalisation) Enumerate(
	ws *netgraph.Workspace,
	solver pathfinder.Solver,
	pfScratch *pathfinder.Scratch,
	costScratch *CostScratch,
	origin, destination int32,
	cfg Config,
	_ *LCG,
) (*RouteSet, error) {
	if err := validateNodes(ws, origin, destination); err != nil {
		return nil, err
	}

	routes := NewRouteSet()
	if origin == destination {
		routes.State = Filled
		return routes, nil
	}

	g := ws.Graph()
	penalty := cfg.Penalty
	if penalty == 0 {
		penalty = 1.0
	}
	costScratch.ResetFrom(g)

	misses := 0
	depth := 0
	routes.State = Exploring

	for {
		if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
			routes.State = Exhausted
			break
		}

		reached := solver.FindPath(ws, costScratch.Values(), origin, destination, pfScratch)
		if !reached {
			routes.State = Exhausted
			break
		}
		route := Route(pathfinder.ReconstructRoute(pfScratch, origin, destination))

		added := routes.Add(route)
		if added {
			misses = 0
		} else {
			misses++
		}

		// Penalize regardless of dedup outcome: otherwise a duplicate
		// route would be rediscovered forever.
		for _, link := range route {
			costScratch.Penalize(link, penalty)
		}

		if !added && cfg.MaxMisses > 0 && misses >= cfg.MaxMisses {
			routes.State = MissLimit
			break
		}
		if cfg.MaxRoutes > 0 && routes.Len() >= cfg.MaxRoutes {
			routes.State = Filled
			break
		}

		depth++
	}

	return routes, nil
}
