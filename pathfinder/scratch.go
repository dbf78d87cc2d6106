package pathfinder

import "math"

// Unreachable is the sentinel cost used for nodes that have not (yet)
// been reached, matching spec.md §4.2's "infinite cost is the unreachable
// sentinel".
const Unreachable = math.MaxFloat64

// Scratch is per-thread working state for one worker goroutine's path
// searches: cost-so-far, predecessor, connector, and a reached-first
// (finalized) buffer, plus the internal priority queue. Allocate one per
// worker with NewScratch and Reset() between OD queries; never allocate
// per-OD (spec.md §5 "per-thread scratch is sized once at batch start and
// reused across ODs").
type Scratch struct {
	// CostSoFar[v] is the best known cost from the query's origin to v.
	CostSoFar []float64

	// Predecessor[v] is the tail vertex of the best-known path into v, or
	// -1 if v has not been reached. predecessor[destination] >= 0
	// indicates reachability (spec.md §4.2).
	Predecessor []int32

	// Connector[v] is the compact link ID used to enter v along the
	// best-known path, or -1 if unreached.
	Connector []int32

	reached []bool // reached-first auxiliary buffer: true once finalized
	pq      nodePQ
}

// NewScratch allocates a Scratch sized for a graph with nNodes nodes, plus
// one extra slot for the centroid-blocking dead-end sentinel node at index
// nNodes (netgraph.Workspace.Block redirects blocked links there; spec.md
// §4.8 sizes predecessor/connector to n_nodes + 1 for exactly this reason).
// That slot is reset like any other but never expanded into a route: the
// dead end has no outgoing neighbors, so no path can traverse past it.
func NewScratch(nNodes int32) *Scratch {
	size := nNodes + 1
	return &Scratch{
		CostSoFar:   make([]float64, size),
		Predecessor: make([]int32, size),
		Connector:   make([]int32, size),
		reached:     make([]bool, size),
		pq:          make(nodePQ, 0, size),
	}
}

// Reset clears all scratch state for a fresh single-source query.
// Complexity: O(nNodes).
func (s *Scratch) Reset() {
	for i := range s.CostSoFar {
		s.CostSoFar[i] = Unreachable
		s.Predecessor[i] = -1
		s.Connector[i] = -1
		s.reached[i] = false
	}
	s.pq = s.pq[:0]
}

// ReconstructRoute walks Connector from destination back to origin and
// returns the ordered compact link IDs origin -> destination. Returns nil
// if destination was not reached (Predecessor[destination] < 0) and
// origin != destination; returns an empty, non-nil slice if origin ==
// destination.
func ReconstructRoute(s *Scratch, origin, destination int32) []int32 {
	if origin == destination {
		return []int32{}
	}
	if s.Predecessor[destination] < 0 {
		return nil
	}

	var route []int32
	for v := destination; v != origin; v = s.Predecessor[v] {
		route = append(route, s.Connector[v])
	}
	// Reverse in place: route was built destination -> origin.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// nodeItem pairs a vertex and its priority-queue key (g-cost for
// Dijkstra, f = g+h for A*).
type nodeItem struct {
	id   int32
	key  float64
}

// nodePQ is a min-heap of nodeItem ordered by key ascending, using the
// same lazy-decrease-key strategy as dijkstra/dijkstra.go's nodePQ: push
// duplicates, skip stale entries on pop via the reached buffer.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
