// Package pathfinder implements single-source-single-target shortest-path
// search over a netgraph.Graph, with a pluggable Dijkstra or A* back-end
// selected per call (spec.md §4.2).
//
// Both back-ends share one per-thread Scratch (cost-so-far, predecessor,
// connector, and a reached-first auxiliary buffer) sized once per worker
// and reused across every OD that worker processes, and both operate over
// a caller-supplied, mutable cost vector rather than the Graph's own
// (shared, immutable) cost slice — the Route Enumerator mutates that
// vector between calls to ban or penalize links (spec.md §4.3). Adjacency
// and centroid blocking come from a netgraph.Workspace.
//
// Ported from the lazy-decrease-key container/heap pattern of
// dijkstra/dijkstra.go (teacher): push duplicate (node, dist) entries
// instead of mutating the heap in place, and skip stale pops once a node
// has been finalized.
package pathfinder
