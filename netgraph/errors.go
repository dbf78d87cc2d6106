package netgraph

import "errors"

// Sentinel errors returned while building or querying a Graph.
//
// Out-of-range index access on a built Graph (Cost, Head, Neighbors) is a
// programming error, not a data error: those panic instead of returning a
// sentinel, per spec.md §4.1 ("any operation with an out-of-range index is
// a programming error and must abort or panic; callers validate external
// node IDs before use").
var (
	// ErrNegativeNodeCount indicates NewGraph was asked to build a graph
	// with a negative node count.
	ErrNegativeNodeCount = errors.New("netgraph: node count must be non-negative")

	// ErrLinkNodeOutOfRange indicates a supplied link references a From or
	// To node outside [0, nNodes).
	ErrLinkNodeOutOfRange = errors.New("netgraph: link endpoint out of range")

	// ErrNegativeCost indicates a supplied link has a negative cost.
	ErrNegativeCost = errors.New("netgraph: link cost must be non-negative")

	// ErrNonFiniteCost indicates a supplied link has an infinite or NaN cost.
	ErrNonFiniteCost = errors.New("netgraph: link cost must be finite")

	// ErrEmptyNetworkExpansion indicates a compact link expands to zero
	// original network link IDs; every compact link must map to at least one.
	ErrEmptyNetworkExpansion = errors.New("netgraph: link has empty network-link expansion")

	// ErrLatLonLengthMismatch indicates WithLatLon was given slices whose
	// length does not equal the node count.
	ErrLatLonLengthMismatch = errors.New("netgraph: lat/lon slice length must equal node count")

	// ErrBadZoneCount indicates NumZones is negative or exceeds the node count.
	ErrBadZoneCount = errors.New("netgraph: zone count out of range")
)
