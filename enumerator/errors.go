package enumerator

import "errors"

// Sentinel errors, matching the teacher's "pkgname: message"-prefixed,
// errors.Is-matchable convention (dijkstra/types.go, matrix/errors.go).
var (
	// ErrInvalidNode is returned when origin or destination falls outside
	// the graph's node range.
	ErrInvalidNode = errors.New("enumerator: origin or destination node out of range")

	// ErrInvalidConfig reports an enumeration configuration that cannot be
	// used. Neither BFSLE nor LinkPenalisation returns it: both treat a
	// MaxDepth of 0 as unbounded, and cross-field combinations such as
	// BFSLE with Penalty != 1.0 are rejected at the orchestrator boundary
	// (spec.md §7).
	ErrInvalidConfig = errors.New("enumerator: invalid enumeration configuration")
)
