// Package netgraph implements the Compressed Graph Adapter: a read-only,
// integer-indexed, CSR ("forward-star") view of a road network, purpose
// built for hot-path shortest-path and route-enumeration workloads.
//
// Unlike a general-purpose graph library, netgraph.Graph never mutates
// after construction: vertices and links are dense int32 indices
// (0..nNodes-1, 0..nLinks-1), link cost is a flat []float64, and adjacency
// is a single contiguous forward-star range per node. Each compact link
// also expands to one or more original network link IDs, recording the
// degree-2-chain collapsing a host network-import step would have
// performed upstream.
//
// A Graph is shared read-only across worker goroutines. Centroid blocking
// — the only per-call graph "mutation" the domain requires — is modeled
// as a private, per-worker Workspace holding a mutable copy of the head[]
// array, never touching the shared Graph.
package netgraph
