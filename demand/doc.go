// Package demand implements the sparse origin-destination demand table of
// spec.md §4.4: named columns of per-OD-pair values, kept as two parallel
// typed pipelines (float32 and float64) rather than a single interface{}
// column type, so callers that only need single precision never pay for
// float64 storage and vice versa.
//
// A Table is built incrementally with AddFrame32/AddFrame64 (already
// sparse, COO-style input) and AddDenseMatrix32/AddDenseMatrix64 (dense
// zone-by-zone matrices, converted to sparse by dropping zero and NaN
// cells), then frozen with Finalize, after which Value32/Value64/NoDemand
// become usable.
//
// Grounded on matrix's functional-configuration-then-strong-validation
// split (matrix/options.go) and its panic-on-programmer-error,
// error-on-bad-input convention (matrix/errors.go).
package demand
