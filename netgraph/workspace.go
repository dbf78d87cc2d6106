package netgraph

// Workspace is a worker-local view over a shared Graph: a mutable copy of
// head[] that centroid blocking rewrites in place, leaving the shared
// Graph untouched. One Workspace is allocated per worker goroutine at
// batch start and reused across every OD that worker processes (spec.md
// §4.1, §5).
type Workspace struct {
	g    *Graph
	head []int32 // private, mutable copy of g.head

	blocked  bool
	origin   int32
	destNode int32
}

// NewWorkspace allocates a per-worker Workspace over g. Complexity: O(E).
func (g *Graph) NewWorkspace() *Workspace {
	return &Workspace{
		g:    g,
		head: append([]int32(nil), g.head...),
	}
}

// deadEnd is the sentinel "node" blocked links are redirected to: any
// index >= nNodes has an empty Neighbors range (see Graph.Neighbors /
// Workspace.Neighbors), so a path can enter it but never leave.
func (w *Workspace) deadEnd() int32 { return w.g.nNodes }

// Cost returns the shared, read-only link cost (blocking never touches
// cost; it only redirects head[]).
func (w *Workspace) Cost(link int32) float64 { return w.g.cost[link] }

// Head returns the (possibly blocked-and-redirected) destination node of
// a compact link in this workspace.
func (w *Workspace) Head(link int32) int32 { return w.head[link] }

// Neighbors returns the forward-star range for node. Nodes >= NumNodes
// (i.e. the dead-end sentinel) have an empty range.
func (w *Workspace) Neighbors(node int32) (start, end int32) {
	if node >= w.g.nNodes {
		return 0, 0
	}
	return w.g.forwardStart[node], w.g.forwardStart[node+1]
}

// Graph returns the underlying shared Graph.
func (w *Workspace) Graph() *Graph { return w.g }

// Block rewires, in this workspace's private head[] copy, every link
// whose source or destination is a centroid other than origin/destination
// to the dead-end sentinel, so no shortest path may pass through a
// centroid it doesn't start or end at (spec.md §4.1). A no-op if the
// underlying Graph was not built with WithZones. Must be paired with
// Unblock before the workspace is reused for another query.
//
// Complexity: O(NumLinks) — one pass over every link, checking each
// link's source and destination against the centroid range (centroids
// are, by convention, the first NumZones node indices).
func (w *Workspace) Block(origin, destination int32) {
	if !w.g.blockCentroids {
		return
	}
	w.blocked = true
	w.origin = origin
	w.destNode = destination

	dead := w.deadEnd()
	for link := int32(0); link < w.g.nLinks; link++ {
		from := w.g.owner[link]
		to := w.g.head[link]
		if from < w.g.numZones && from != origin {
			w.head[link] = dead
			continue
		}
		if to < w.g.numZones && to != destination {
			w.head[link] = dead
		}
	}
}

// Unblock restores this workspace's head[] copy to the shared Graph's
// values, undoing any prior Block call. Every path-finding call that
// blocks must unblock before returning the workspace to its pool
// (spec.md §4.1).
func (w *Workspace) Unblock() {
	if !w.blocked {
		return
	}
	copy(w.head, w.g.head)
	w.blocked = false
}
