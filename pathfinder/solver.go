package pathfinder

import (
	"container/heap"

	"github.com/katalvlaran/routechoice/netgraph"
)

// Solver is the capability interface spec.md §9 calls for: path-finding
// varies over {Dijkstra, A*}, selected at call time rather than through a
// type hierarchy.
type Solver interface {
	// FindPath computes a shortest path from origin to destination over
	// ws using costVector (not ws.Graph()'s own, shared cost slice) as
	// per-link weight, writing results into scratch. Returns whether
	// destination was reached.
	FindPath(ws *netgraph.Workspace, costVector []float64, origin, destination int32, scratch *Scratch) bool
}

// DijkstraSolver is the default back-end: a classic lazy-decrease-key
// Dijkstra over costVector, ported from dijkstra/dijkstra.go's runner.
type DijkstraSolver struct{}

// FindPath implements Solver.
func (DijkstraSolver) FindPath(ws *netgraph.Workspace, costVector []float64, origin, destination int32, scratch *Scratch) bool {
	scratch.Reset()
	scratch.CostSoFar[origin] = 0
	heap.Push(&scratch.pq, nodeItem{id: origin, key: 0})

	for scratch.pq.Len() > 0 {
		item := heap.Pop(&scratch.pq).(nodeItem)
		u, d := item.id, item.key
		if scratch.reached[u] {
			continue
		}
		scratch.reached[u] = true
		if u == destination {
			break
		}

		start, end := ws.Neighbors(u)
		for link := start; link < end; link++ {
			w := costVector[link]
			if w >= Unreachable {
				continue // banned/impassable link
			}
			v := ws.Head(link)
			if scratch.reached[v] {
				continue
			}
			nd := d + w
			if nd < scratch.CostSoFar[v] {
				scratch.CostSoFar[v] = nd
				scratch.Predecessor[v] = u
				scratch.Connector[v] = link
				heap.Push(&scratch.pq, nodeItem{id: v, key: nd})
			}
		}
	}

	return origin == destination || scratch.Predecessor[destination] >= 0
}

// Heuristic estimates the remaining cost from node to a fixed destination.
// Must be admissible (never overestimate) for A* to guarantee optimality.
type Heuristic func(node int32) float64

// HeuristicFactory builds a Heuristic bound to one destination, given
// read-only access to the Graph (for lat/lon lookups).
type HeuristicFactory func(g *netgraph.Graph, destination int32) Heuristic

// ZeroHeuristic is the trivial (always-admissible) heuristic; AStarSolver
// with ZeroHeuristic degenerates to Dijkstra.
func ZeroHeuristic(*netgraph.Graph, int32) Heuristic {
	return func(int32) float64 { return 0 }
}

// AStarSolver is the A* back-end (spec.md §9 Open Question (b): shipped
// fully wired, not deferred). f = g + h, g the true cost-so-far and h the
// Heuristic's estimate; the reached buffer still finalizes nodes in
// increasing f order so the same lazy-decrease-key loop as Dijkstra
// applies unchanged.
type AStarSolver struct {
	Heuristic HeuristicFactory
}

// FindPath implements Solver.
func (a AStarSolver) FindPath(ws *netgraph.Workspace, costVector []float64, origin, destination int32, scratch *Scratch) bool {
	factory := a.Heuristic
	if factory == nil {
		factory = ZeroHeuristic
	}
	h := factory(ws.Graph(), destination)

	scratch.Reset()
	scratch.CostSoFar[origin] = 0
	heap.Push(&scratch.pq, nodeItem{id: origin, key: h(origin)})

	for scratch.pq.Len() > 0 {
		item := heap.Pop(&scratch.pq).(nodeItem)
		u := item.id
		if scratch.reached[u] {
			continue
		}
		// Stale entry check: key was g(u)+h(u) at push time, but
		// CostSoFar[u] may have since improved via another path.
		if item.key > scratch.CostSoFar[u]+h(u)+1e-9 {
			continue
		}
		scratch.reached[u] = true
		if u == destination {
			break
		}

		start, end := ws.Neighbors(u)
		for link := start; link < end; link++ {
			w := costVector[link]
			if w >= Unreachable {
				continue
			}
			v := ws.Head(link)
			if scratch.reached[v] {
				continue
			}
			nd := scratch.CostSoFar[u] + w
			if nd < scratch.CostSoFar[v] {
				scratch.CostSoFar[v] = nd
				scratch.Predecessor[v] = u
				scratch.Connector[v] = link
				heap.Push(&scratch.pq, nodeItem{id: v, key: nd + h(v)})
			}
		}
	}

	return origin == destination || scratch.Predecessor[destination] >= 0
}
