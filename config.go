package routechoice

import (
	"github.com/katalvlaran/routechoice/choice"
	"github.com/katalvlaran/routechoice/loading"
)

// ODPair is a pair of compact node indices, spec.md's GLOSSARY entry
// verbatim: "origin-destination pair, two node indices".
type ODPair struct {
	Origin      int32
	Destination int32
}

// Config bounds one Run or Batched call (spec.md §4.8/§6). Build it from
// DefaultConfig rather than a bare struct literal: the zero value of a
// bool field (BFSLE, AStar, StoreResults) does not match spec.md §6's
// documented defaults.
type Config struct {
	// MaxRoutes stops enumeration once this many distinct routes have been
	// collected for an OD. Zero means unbounded. At least one of
	// MaxRoutes, MaxDepth must be positive.
	MaxRoutes int

	// MaxDepth bounds BFS-LE's queue levels or LP's iteration count. Zero
	// means unbounded.
	MaxDepth int

	// MaxMisses stops enumeration after this many duplicate routes.
	MaxMisses int

	// Seed derives each worker's independent LCG stream (spec.md §5: "a
	// seeded linear-congruential generator per thread, not per OD").
	Seed int64

	// Cores is the worker count. Zero means runtime.GOMAXPROCS(0).
	Cores int

	// BFSLE selects Breadth-First-Search-with-Link-Elimination; false
	// selects Link-Penalisation.
	BFSLE bool

	// Penalty multiplies the cost of every link used by an accepted route.
	// Must be > 1.0 when BFSLE is false (Link-Penalisation); must equal
	// 1.0 when BFSLE is true (spec.md §9 Open Question (a)'s stricter
	// reading).
	Penalty float64

	// AStar prefers pathfinder.AStarSolver with the haversine heuristic
	// when the graph carries lat/lon; falls back to Dijkstra otherwise.
	AStar bool

	// StoreResults keeps every emitted choice.Row in the returned Result.
	// When false, rows are still built (so EagerLinkLoading and a
	// checkpoint.Writer can consume them) but discarded once they have
	// contributed to loadings/persistence.
	StoreResults bool

	// PathSizeLogit enables choice.Compute (cost, mask, path-overlap,
	// probability) for every OD's route set. When false, emitted rows
	// carry only origin_id/destination_id/route_set.
	PathSizeLogit bool

	// EagerLinkLoading performs per-OD link-loading and select-link
	// accumulation inside the parallel region. Requires PathSizeLogit (a
	// route's contribution is its PSL probability times demand);
	// validateConfig rejects EagerLinkLoading=true, PathSizeLogit=false
	// with ErrInvalidParameters at the batch boundary.
	EagerLinkLoading bool

	// Beta is the path-size-logit dispersion parameter. Must be >= 0 when
	// PathSizeLogit is enabled.
	Beta float64

	// CutoffProb is the caller-facing "fraction of demand to drop below"
	// knob, [0, 1]. Internally rescaled to choice.Config's [0.5, 1.0]
	// binary-logit domain (spec.md §9 Open Question (c)); this field's
	// semantics never change.
	CutoffProb float64

	// SelectLinks are evaluated against every route when EagerLinkLoading
	// is set (they are otherwise unused).
	SelectLinks []loading.SelectLinkQuery

	// Where, if non-nil, filters the emitted choice.Row stream before
	// materialization or persistence (spec.md §4.8's "where-predicate
	// parameter").
	Where func(choice.Row) bool
}

// DefaultConfig returns the parameter defaults of spec.md §6 exactly:
// MaxRoutes=0, MaxDepth=0, MaxMisses=100, Seed=0, Cores=0 (auto),
// Penalty=1.0, AStar=true, BFSLE=true, StoreResults=true,
// PathSizeLogit=false, EagerLinkLoading=false, Beta=1.0, CutoffProb=0.0.
//
// MaxRoutes and MaxDepth both default to zero, which on its own fails
// validateConfig ("at least one must be positive") — callers must set at
// least one before calling Run or Batched, exactly as spec.md §6 notes.
func DefaultConfig() Config {
	return Config{
		MaxRoutes:        0,
		MaxDepth:         0,
		MaxMisses:        100,
		Seed:             0,
		Cores:            0,
		BFSLE:            true,
		Penalty:          1.0,
		AStar:            true,
		StoreResults:     true,
		PathSizeLogit:    false,
		EagerLinkLoading: false,
		Beta:             1.0,
		CutoffProb:       0.0,
	}
}

// Warning is the batch-level warning record of spec.md §7: a non-fatal,
// caller-actionable condition, optionally attributed to the OD pair that
// triggered it (duplicate-OD collapse, zero-cost masking); batch-wide
// warnings (none currently) would carry a nil OD.
type Warning struct {
	Code    string
	Message string
	OD      *ODPair
}

func (w Warning) String() string { return w.Code + ": " + w.Message }

// Result is Batched's output: the materialized route-set/choice rows
// (when StoreResults is set and no checkpoint.Writer consumed them) and
// the reduced link-loading tables (when EagerLinkLoading is set).
type Result struct {
	// Rows holds every emitted choice.Row, across all ODs, in unspecified
	// order (spec.md §5: "OD processing order within a batch is
	// unspecified"). Nil if StoreResults was false or a checkpoint.Writer
	// was supplied.
	Rows []choice.Row

	// Loading is the reduced link-loading Result, nil unless
	// EagerLinkLoading was set.
	Loading *loading.Result

	storeResults bool
}

// RowsFor returns every row belonging to (originID, destinationID),
// matching choice.Row's external-ID columns. Returns ErrResultsNotComputed
// if the batch that produced r did not retain rows in memory.
func (r *Result) RowsFor(originID, destinationID int64) ([]choice.Row, error) {
	if !r.storeResults {
		return nil, ErrResultsNotComputed
	}
	var out []choice.Row
	for _, row := range r.Rows {
		if row.OriginID == originID && row.DestinationID == destinationID {
			out = append(out, row)
		}
	}
	return out, nil
}
