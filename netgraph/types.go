package netgraph

// LinkInput describes one compact link before CSR construction. Links do
// not need to be pre-sorted by From; NewGraph performs a stable
// counting-sort into forward-star order.
type LinkInput struct {
	// From and To are compact node indices, [0, nNodes).
	From, To int32

	// Cost is the link's traversal cost; must be finite and >= 0.
	Cost float64

	// NetworkLinkIDs is the 1:n expansion of this compact link into the
	// original, uncompressed network's link IDs, in path order. Must be
	// non-empty.
	NetworkLinkIDs []int32
}

// unmappedNode fills indexToNode slots for compact nodes absent from the
// external ID mapping.
const unmappedNode = -1

// GraphOption configures optional Graph attributes at construction time.
type GraphOption func(*buildConfig)

type buildConfig struct {
	lat, lon       []float64
	nodeToIndex    map[int64]int32
	numZones       int32
	blockCentroids bool
}

// WithLatLon attaches per-node latitude/longitude, enabling the A*
// heuristic in package pathfinder. Both slices must have length nNodes.
func WithLatLon(lat, lon []float64) GraphOption {
	return func(c *buildConfig) {
		c.lat = lat
		c.lon = lon
	}
}

// WithNodeMapping records how external (e.g. database) node IDs map onto
// compact indices, so callers can resolve OD pairs given in external IDs.
// Absent external IDs are simply not present in the map; NodeIndex reports
// that via its boolean return, mirroring spec.md's "-1 means absent".
func WithNodeMapping(m map[int64]int32) GraphOption {
	return func(c *buildConfig) { c.nodeToIndex = m }
}

// WithZones marks the first n compact node indices as centroids and
// enables centroid-blocking support in Workspace.Block. n must be in
// [0, nNodes].
func WithZones(n int32) GraphOption {
	return func(c *buildConfig) {
		c.numZones = n
		c.blockCentroids = n > 0
	}
}

// Graph is the immutable, CSR-indexed Compressed Graph Adapter described
// in spec.md §4.1. All fields are unexported; callers use the read-only
// accessor methods below or build a Workspace for path-finding.
type Graph struct {
	nNodes int32
	nLinks int32

	cost         []float64 // cost[link]
	head         []int32   // head[link] -> destination node
	owner        []int32   // owner[link] -> source node (for centroid blocking)
	forwardStart []int32   // forwardStart[node] -> first link id of node's range, len nNodes+1

	compToNetStart []int32 // compToNetStart[link] -> first index into networkLinkIDs, len nLinks+1
	networkLinkIDs []int32 // flattened compact -> network expansion

	nodeToIndex map[int64]int32
	indexToNode []int64 // inverse of nodeToIndex, nil if no mapping was supplied

	lat, lon []float64

	numZones       int32
	blockCentroids bool
}

// NumNodes returns the number of compact nodes.
func (g *Graph) NumNodes() int32 { return g.nNodes }

// NumLinks returns the number of compact links.
func (g *Graph) NumLinks() int32 { return g.nLinks }

// NumNetworkLinks returns the largest original network link ID referenced
// by the compact-to-network expansion plus one (0 if none): the length of
// a dense vector indexed by network link ID, not a count of distinct IDs.
func (g *Graph) NumNetworkLinks() int32 {
	var maxID int32 = -1
	for _, id := range g.networkLinkIDs {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// NumZones returns the configured centroid count.
func (g *Graph) NumZones() int32 { return g.numZones }

// BlockCentroidFlows reports whether this Graph was built with centroid
// blocking enabled (WithZones with n > 0).
func (g *Graph) BlockCentroidFlows() bool { return g.blockCentroids }

// HasLatLon reports whether per-node coordinates are available, i.e.
// whether the A* heuristic can be used.
func (g *Graph) HasLatLon() bool { return g.lat != nil && g.lon != nil }

// LatLon returns the latitude and longitude of a compact node. Panics if
// HasLatLon is false or node is out of range.
func (g *Graph) LatLon(node int32) (lat, lon float64) {
	if !g.HasLatLon() {
		panic("netgraph: LatLon called on a Graph built without WithLatLon")
	}
	return g.lat[node], g.lon[node]
}

// HasNodeMapping reports whether the Graph was built with WithNodeMapping,
// letting a caller distinguish "no external ID for this node" from "this
// Graph never carried external IDs at all; treat caller-given int64s as
// compact indices directly".
func (g *Graph) HasNodeMapping() bool { return g.nodeToIndex != nil }

// NodeIndex resolves an external node ID to a compact index. The second
// return is false when the ID is absent from the mapping supplied via
// WithNodeMapping, mirroring spec.md §3's "-1 means absent".
func (g *Graph) NodeIndex(externalID int64) (int32, bool) {
	idx, ok := g.nodeToIndex[externalID]
	return idx, ok
}

// ExternalNodeID is NodeIndex's inverse: it resolves a compact node index
// back to the external ID supplied via WithNodeMapping. The second return
// is false if the Graph was built without WithNodeMapping, or if node has
// no external counterpart in it. Used when emitting origin_id/
// destination_id columns (spec.md §4.5/§6) for a Graph whose callers think
// in external IDs.
func (g *Graph) ExternalNodeID(node int32) (int64, bool) {
	if g.indexToNode == nil {
		return 0, false
	}
	id := g.indexToNode[node]
	if id == unmappedNode {
		return 0, false
	}
	return id, true
}

// Cost returns the traversal cost of a compact link. Panics if link is
// out of range (programming error, per spec.md §4.1).
func (g *Graph) Cost(link int32) float64 {
	return g.cost[link]
}

// Head returns the destination node of a compact link. Panics if link is
// out of range.
func (g *Graph) Head(link int32) int32 {
	return g.head[link]
}

// Owner returns the source node of a compact link. Panics if link is out
// of range.
func (g *Graph) Owner(link int32) int32 {
	return g.owner[link]
}

// Neighbors returns the [start, end) forward-star range of compact link
// IDs outgoing from node. Panics if node is out of range; an empty range
// is valid (dead-end node).
func (g *Graph) Neighbors(node int32) (start, end int32) {
	return g.forwardStart[node], g.forwardStart[node+1]
}

// ExpandLink returns the original network link IDs a compact link expands
// to, in path order. Panics if link is out of range.
func (g *Graph) ExpandLink(link int32) []int32 {
	return g.networkLinkIDs[g.compToNetStart[link]:g.compToNetStart[link+1]]
}

// ExpandRoute expands an ordered sequence of compact link IDs into
// original network link IDs, concatenated in path order, matching the
// route_set column schema of spec.md §4.5/§6.
func (g *Graph) ExpandRoute(route []int32) []int32 {
	out := make([]int32, 0, len(route))
	for _, link := range route {
		out = append(out, g.ExpandLink(link)...)
	}
	return out
}
