package netgraph

import "math"

// NewGraph builds an immutable Graph from a node count and an unordered
// slice of links, performing a stable counting-sort into forward-star
// (CSR) order so that Neighbors(node) becomes a contiguous range.
//
// Complexity: O(nNodes + len(links)).
func NewGraph(nNodes int32, links []LinkInput, opts ...GraphOption) (*Graph, error) {
	if nNodes < 0 {
		return nil, ErrNegativeNodeCount
	}

	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.numZones < 0 || cfg.numZones > nNodes {
		return nil, ErrBadZoneCount
	}
	if cfg.lat != nil || cfg.lon != nil {
		if int32(len(cfg.lat)) != nNodes || int32(len(cfg.lon)) != nNodes {
			return nil, ErrLatLonLengthMismatch
		}
	}

	nLinks := int32(len(links))
	for _, l := range links {
		if l.From < 0 || l.From >= nNodes || l.To < 0 || l.To >= nNodes {
			return nil, ErrLinkNodeOutOfRange
		}
		if math.IsNaN(l.Cost) || math.IsInf(l.Cost, 0) {
			return nil, ErrNonFiniteCost
		}
		if l.Cost < 0 {
			return nil, ErrNegativeCost
		}
		if len(l.NetworkLinkIDs) == 0 {
			return nil, ErrEmptyNetworkExpansion
		}
	}

	// Stable counting sort of links by From, producing forward-star ranges.
	forwardStart := make([]int32, nNodes+1)
	for _, l := range links {
		forwardStart[l.From+1]++
	}
	for i := int32(1); i <= nNodes; i++ {
		forwardStart[i] += forwardStart[i-1]
	}

	cursor := append([]int32(nil), forwardStart...)
	cost := make([]float64, nLinks)
	head := make([]int32, nLinks)
	owner := make([]int32, nLinks)
	compToNetStart := make([]int32, nLinks+1)
	var netTotal int32
	for _, l := range links {
		netTotal += int32(len(l.NetworkLinkIDs))
	}
	networkLinkIDs := make([]int32, 0, netTotal)

	// First pass places cost/head/owner in CSR order; network-link
	// expansion is appended in the same pass since link IDs are now fixed.
	slot := make([]int32, nLinks) // original index -> new compact link id
	for i, l := range links {
		pos := cursor[l.From]
		cursor[l.From]++
		cost[pos] = l.Cost
		head[pos] = l.To
		owner[pos] = l.From
		slot[i] = pos
	}

	compToNetStart[0] = 0
	// Walk compact link ids in order, looking up which original index
	// landed there via an inverse of slot.
	inverse := make([]int32, nLinks)
	for i, pos := range slot {
		inverse[pos] = int32(i)
	}
	for link := int32(0); link < nLinks; link++ {
		orig := links[inverse[link]]
		networkLinkIDs = append(networkLinkIDs, orig.NetworkLinkIDs...)
		compToNetStart[link+1] = int32(len(networkLinkIDs))
	}

	var indexToNode []int64
	if cfg.nodeToIndex != nil {
		indexToNode = make([]int64, nNodes)
		for i := range indexToNode {
			indexToNode[i] = unmappedNode
		}
		for externalID, idx := range cfg.nodeToIndex {
			indexToNode[idx] = externalID
		}
	}

	g := &Graph{
		nNodes:         nNodes,
		nLinks:         nLinks,
		cost:           cost,
		head:           head,
		owner:          owner,
		forwardStart:   forwardStart,
		compToNetStart: compToNetStart,
		networkLinkIDs: networkLinkIDs,
		nodeToIndex:    cfg.nodeToIndex,
		indexToNode:    indexToNode,
		lat:            cfg.lat,
		lon:            cfg.lon,
		numZones:       cfg.numZones,
		blockCentroids: cfg.blockCentroids,
	}

	return g, nil
}
