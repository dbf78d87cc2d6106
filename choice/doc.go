// Package choice scores a route set with the Path-Size Logit (PSL)
// discrete choice model (spec.md §4.5): per-route cost, a binary-logit
// cutoff mask that drops routes too much worse than the cheapest one,
// route-overlap path-size correction, and PSL choice probability.
//
// Grounded on dijkstra's runner/heap structuring for the top-level
// Compute entry point and matrix/impl_statistics.go's style of
// numeric-reduction helpers; uses gonum.org/v1/gonum/floats for the
// summation PSL's probability normalization needs, the same
// dependency gonum-gonum's own numeric code leans on for this exact kind
// of reduction.
package choice
