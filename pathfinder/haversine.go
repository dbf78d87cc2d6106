package pathfinder

import (
	"math"

	"github.com/katalvlaran/routechoice/netgraph"
)

// earthRadiusMeters is the mean Earth radius used by the haversine
// formula below.
const earthRadiusMeters = 6371000.0

// HaversineHeuristic builds an A* heuristic from great-circle distance
// between a node's and the destination's lat/lon, per spec.md §4.2's
// "A* with a provided haversine/equirectangular heuristic and per-node
// lat/lon views". Admissible whenever link cost is itself distance-like
// (e.g. meters); callers using a different cost unit (time, generalized
// cost) should scale the result or supply their own HeuristicFactory.
//
// Panics if g was not built with netgraph.WithLatLon — callers should
// check g.HasLatLon() before selecting AStarSolver with this factory.
func HaversineHeuristic(g *netgraph.Graph, destination int32) Heuristic {
	destLat, destLon := g.LatLon(destination)
	destLatRad := destLat * math.Pi / 180
	destLonRad := destLon * math.Pi / 180

	return func(node int32) float64 {
		lat, lon := g.LatLon(node)
		return haversine(lat*math.Pi/180, lon*math.Pi/180, destLatRad, destLonRad)
	}
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
