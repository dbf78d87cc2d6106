package enumerator

import (
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
)

// Config bounds one Strategy.Enumerate call. Cross-field validation (for
// instance rejecting BFS-LE combined with Penalty != 1.0, spec.md §9 Open
// Question (a)) happens once at the orchestrator boundary; by the time a
// Strategy sees a Config it is assumed internally consistent.
type Config struct {
	// MaxRoutes stops enumeration once this many distinct routes have
	// been collected. Zero means unbounded (bounded instead by MaxDepth /
	// MaxMisses / search exhaustion).
	MaxRoutes int

	// MaxDepth bounds BFS-LE's queue levels (or LP's iteration count).
	// Zero means unbounded.
	MaxDepth int

	// MaxMisses stops enumeration after this many duplicate routes are
	// encountered. For BFS-LE this is a cumulative count; for
	// Link-Penalisation it is consecutive, reset whenever a new route is
	// accepted (spec.md §4.3.2).
	MaxMisses int

	// Penalty multiplies the cost of every link used by an accepted
	// route. 1.0 disables the effect. Link-Penalisation applies it every
	// iteration; BFS-LE applies it as a between-depth overlay that is
	// inert at the default of 1.0.
	Penalty float64
}

// Strategy enumerates a RouteSet for one OD pair. ws and scratch are
// worker-owned and reused across calls; costScratch is likewise
// worker-owned, sized to the graph's link count.
type Strategy interface {
	Enumerate(
		ws *netgraph.Workspace,
		solver pathfinder.Solver,
		pfScratch *pathfinder.Scratch,
		costScratch *CostScratch,
		origin, destination int32,
		cfg Config,
		rng *LCG,
	) (*RouteSet, error)
}

// validateNodes is shared precondition checking for both strategies.
func validateNodes(ws *netgraph.Workspace, origin, destination int32) error {
	n := ws.Graph().NumNodes()
	if origin < 0 || origin >= n || destination < 0 || destination >= n {
		return ErrInvalidNode
	}
	return nil
}
