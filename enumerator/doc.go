// Package enumerator implements the two route-set enumeration strategies
// of spec.md §4.3: Breadth-First Search with Link-Elimination (BFS-LE) and
// Link-Penalisation (LP). Both build a deduplicated RouteSet for one OD
// pair on top of package pathfinder's single-source-single-target solver.
//
// BFS-LE explores a "graph of graphs" whose nodes are banned-link subsets
// (spec.md §9): rather than materializing that graph, it keeps a queue of
// BannedSet deltas with a visited set keyed by an order-independent hash,
// mirroring the "materialize the queue of deltas" design note. Link-
// Penalisation keeps a single mutable cost vector and repeatedly
// penalizes the links of each route it finds.
//
// Structuring (runner-owns-mutable-state, sentinel errors, doc-heavy
// top-level entry point) is grounded on dijkstra/dijkstra.go and
// bfs/bfs.go's walker; the seeded-stream RNG is grounded on
// tsp/rng.go's deriveSeed/shuffle idiom, reimplemented as the
// linear-congruential generator spec.md §5 requires.
package enumerator
