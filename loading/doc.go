// Package loading implements the Link Loading Engine of spec.md §4.6: a
// per-worker Accumulator that turns route probabilities x demand into
// total link loads, select-link loads, and select-link OD matrices, plus
// a single-threaded Reduce fold across per-worker Accumulators.
//
// Grounded on flow/types.go's per-run options struct shape for
// SelectLinkQuery/Accumulator construction and core's "never hold both
// locks, minimize contention" discipline, generalized here to a
// lock-free design: each Accumulator is owned exclusively by one worker
// goroutine during the parallel region (spec.md §5), so no locking is
// needed until Reduce's single-threaded fold. Dense-vector summation in
// Reduce uses gonum.org/v1/gonum/floats.Add, the same pack-sourced
// numeric kernel package choice uses for its own []float64 reductions.
package loading
