package enumerator

import (
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
)

// BFSLE is the Breadth-First-Search-with-Link-Elimination strategy
// (spec.md §4.3.1): level by level, every accepted route spawns one new
// queue entry per link it used — that link banned in addition to whatever
// the current entry already bans — so the queue enumerates exactly the
// "graph of subgraphs" spec.md §9's design note describes, without
// materializing it.
//
// The queue and visited-by-hash index are built from BannedSet directly;
// the per-depth penalisation overlay (inert unless Config.Penalty != 1.0)
// is grounded on the same multiplicative-cost idiom LinkPenalisation uses,
// kept structurally present here so a caller that does enable it for
// BFS-LE (bypassing the orchestrator's own validation) still gets the
// documented behavior rather than silent divergence.
type BFSLE struct{}

type bfsleEntry struct {
	banned *BannedSet
}

// Enumerate implements Strategy.
func (BFSLE) Enumerate(
	ws *netgraph.Workspace,
	solver pathfinder.Solver,
	pfScratch *pathfinder.Scratch,
	costScratch *CostScratch,
	origin, destination int32,
	cfg Config,
	rng *LCG,
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
	penaltyMultiplier := make([]float64, g.NumLinks())
	for i := range penaltyMultiplier {
		penaltyMultiplier[i] = 1.0
	}
	var touchedThisDepth []int32

	visited := make(map[uint64][]*BannedSet)
	root := NewBannedSet()
	visited[root.Hash()] = []*BannedSet{root}

	queue := []*bfsleEntry{{banned: root}}
	misses := 0
	depth := 0
	routes.State = Exploring

	for len(queue) > 0 {
		if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
			routes.State = Exhausted
			break
		}

		// Shuffle this level's queue if it could overshoot the remaining
		// route budget, so acceptance within a level is not biased toward
		// insertion order (spec.md §5's shuffle requirement).
		if cfg.MaxRoutes > 0 && len(queue) > cfg.MaxRoutes-routes.Len() && rng != nil {
			rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
		}

		var next []*bfsleEntry
		filled := false

		for _, entry := range queue {
			costScratch.ResetFrom(g)
			entry.banned.ForEach(func(link int32) { costScratch.Ban(link) })
			for link, m := range penaltyMultiplier {
				if m != 1.0 {
					costScratch.Penalize(int32(link), m)
				}
			}

			reached := solver.FindPath(ws, costScratch.Values(), origin, destination, pfScratch)
			if !reached {
				continue
			}
			route := Route(pathfinder.ReconstructRoute(pfScratch, origin, destination))

			added := routes.Add(route)
			if !added {
				misses++
				if cfg.MaxMisses > 0 && misses >= cfg.MaxMisses {
					routes.State = MissLimit
					return routes, nil
				}
				continue
			}

			for _, link := range route {
				childBanned := entry.banned.With(link)
				if !seenBanned(visited, childBanned) {
					visited[childBanned.Hash()] = append(visited[childBanned.Hash()], childBanned)
					next = append(next, &bfsleEntry{banned: childBanned})
				}
				touchedThisDepth = append(touchedThisDepth, link)
			}

			if cfg.MaxRoutes > 0 && routes.Len() >= cfg.MaxRoutes {
				filled = true
				break
			}
		}

		if filled {
			routes.State = Filled
			return routes, nil
		}

		bumped := make(map[int32]bool, len(touchedThisDepth))
		for _, link := range touchedThisDepth {
			if !bumped[link] {
				penaltyMultiplier[link] *= penalty
				bumped[link] = true
			}
		}
		touchedThisDepth = touchedThisDepth[:0]

		queue = next
		depth++
	}

	if routes.State == Exploring {
		routes.State = Exhausted
	}
	return routes, nil
}

func seenBanned(visited map[uint64][]*BannedSet, b *BannedSet) bool {
	for _, candidate := range visited[b.Hash()] {
		if candidate.Equal(b) {
			return true
		}
	}
	return false
}
