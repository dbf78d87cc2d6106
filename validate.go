package routechoice

import "fmt"

// validateConfig checks cfg against spec.md §4.8/§7's pre-flight rules,
// grounded on dijkstra.Dijkstra's "validate in numbered steps before any
// work starts" shape. Every failure wraps ErrInvalidParameters so callers
// can errors.Is against one sentinel regardless of which rule tripped.
func validateConfig(cfg Config) error {
	// 1) At least one of MaxRoutes, MaxDepth must bound the search.
	if cfg.MaxRoutes < 0 {
		return fmt.Errorf("%w: MaxRoutes must be non-negative, got %d", ErrInvalidParameters, cfg.MaxRoutes)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth must be non-negative, got %d", ErrInvalidParameters, cfg.MaxDepth)
	}
	if cfg.MaxRoutes == 0 && cfg.MaxDepth == 0 {
		return fmt.Errorf("%w: at least one of MaxRoutes, MaxDepth must be positive", ErrInvalidParameters)
	}

	// 2) CutoffProb and Beta.
	if cfg.CutoffProb < 0 || cfg.CutoffProb > 1 {
		return fmt.Errorf("%w: CutoffProb must be in [0,1], got %g", ErrInvalidParameters, cfg.CutoffProb)
	}
	if cfg.PathSizeLogit && cfg.Beta < 0 {
		return fmt.Errorf("%w: Beta must be >= 0 when PathSizeLogit is enabled, got %g", ErrInvalidParameters, cfg.Beta)
	}
	if cfg.EagerLinkLoading && !cfg.PathSizeLogit {
		return fmt.Errorf("%w: EagerLinkLoading requires PathSizeLogit (a route's contribution is its PSL probability times demand)", ErrInvalidParameters)
	}

	// 3) Penalty policy, split by strategy (spec.md §9 Open Question (a)'s
	// stricter reading: BFS-LE combined with Penalty != 1.0 is rejected,
	// not merely overlaid).
	penalty := cfg.Penalty
	if penalty == 0 {
		penalty = 1.0
	}
	if cfg.BFSLE {
		if penalty != 1.0 {
			return fmt.Errorf("%w: BFS-LE requires Penalty == 1.0, got %g", ErrInvalidParameters, penalty)
		}
	} else if penalty <= 1.0 {
		return fmt.Errorf("%w: Link-Penalisation requires Penalty > 1.0, got %g", ErrInvalidParameters, penalty)
	}

	return nil
}

// dedupeODPairs drops OD pairs already seen, reporting one Warning per
// duplicate (spec.md §3/§7: "Duplicate OD pairs in input must be
// collapsed; a warning is emitted"). demand.Table.Finalize already
// collapses duplicates structurally (its OD index is a map), so this is
// a defensive second pass that only ever fires if ODPairs' caller-visible
// contract changes; kept because spec.md names the behavior explicitly.
func dedupeODPairs(pairs [][2]int32) ([][2]int32, []Warning) {
	seen := make(map[[2]int32]bool, len(pairs))
	out := make([][2]int32, 0, len(pairs))
	var warn []Warning
	for _, p := range pairs {
		if seen[p] {
			od := ODPair{Origin: p[0], Destination: p[1]}
			warn = append(warn, Warning{
				Code:    "duplicate_od",
				Message: fmt.Sprintf("duplicate OD pair (%d,%d) dropped", p[0], p[1]),
				OD:      &od,
			})
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, warn
}
