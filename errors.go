package routechoice

import "errors"

// Sentinel errors, matching the teacher's "pkgname: message"-prefixed,
// errors.Is-matchable convention (dijkstra/types.go, matrix/errors.go).
var (
	// ErrInvalidParameters is returned when a Config value fails pre-flight
	// validation: both MaxRoutes and MaxDepth zero, CutoffProb outside
	// [0,1], a negative Beta with PathSizeLogit enabled, or a Penalty that
	// does not fit the selected enumeration strategy (spec.md §7).
	ErrInvalidParameters = errors.New("routechoice: invalid parameter combination")

	// ErrInvalidNode is returned when an origin or destination cannot be
	// resolved to a compact node index in the graph.
	ErrInvalidNode = errors.New("routechoice: origin or destination not present in the compact graph")

	// ErrResultsNotComputed is returned by Result's row accessors when the
	// batch that produced it was run with StoreResults false (or flushed
	// straight to a checkpoint.Writer), so no in-memory rows exist to read.
	ErrResultsNotComputed = errors.New("routechoice: results not computed for this batch")
)
