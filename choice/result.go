package choice

import (
	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/netgraph"
)

// Result is the parallel-vector choice-result record of spec.md §3/§4.5,
// indexed 1:1 with the RouteSet.Routes it was computed from.
type Result struct {
	// Cost[j] is the sum of base link costs along route j.
	Cost []float64

	// Mask[j] reports whether route j survives the binary-logit cutoff.
	// All-false means the route set was fully masked (spec.md §4.5 item 2's
	// zero-cost pathology).
	Mask []bool

	// PathOverlap[j] is γ_j, the inclusion-size correction term. Zero for
	// masked routes.
	PathOverlap []float64

	// Probability[j] is the PSL choice probability. Zero for masked
	// routes; sums to 1 over unmasked routes unless the whole set is
	// masked, in which case it sums to 0.
	Probability []float64
}

// Row is one line of the route-set table schema of spec.md §4.5/§6: one
// row per route (not per OD), sharing an OriginID/DestinationID across
// every route of the same OD. Without assignment (PathSizeLogit disabled)
// only OriginID, DestinationID, and RouteSet are meaningful; Assigned
// reports which case this Row is in.
type Row struct {
	OriginID      int64 `json:"origin_id"`
	DestinationID int64 `json:"destination_id"`

	// RouteSet is the route's link sequence expanded to original network
	// link IDs, in path order (netgraph.Graph.ExpandRoute output).
	RouteSet []int32 `json:"route_set"`

	// Assigned reports whether Cost/Mask/PathOverlap/Probability were
	// computed for this row (PathSizeLogit was enabled for the batch).
	// Not itself a schema column; omitted from the persisted form.
	Assigned bool `json:"-"`

	Cost        float64 `json:"cost"`
	Mask        bool    `json:"mask"`
	PathOverlap float64 `json:"path_overlap"`
	Probability float64 `json:"probability"`
}

// BuildRows assembles one Row per route for a single OD, expanding each
// route's compact link IDs to network link IDs via g. result may be nil,
// in which case the emitted rows carry only the first three columns
// (Assigned stays false), matching spec.md §4.5's "without assignment"
// schema.
func BuildRows(originID, destinationID int64, routes []enumerator.Route, g *netgraph.Graph, result *Result) []Row {
	rows := make([]Row, len(routes))
	for j, route := range routes {
		rows[j] = Row{
			OriginID:      originID,
			DestinationID: destinationID,
			RouteSet:      g.ExpandRoute(route),
		}
		if result != nil {
			rows[j].Assigned = true
			rows[j].Cost = result.Cost[j]
			rows[j].Mask = result.Mask[j]
			rows[j].PathOverlap = result.PathOverlap[j]
			rows[j].Probability = result.Probability[j]
		}
	}
	return rows
}
