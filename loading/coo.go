package loading

import "sort"

// COOEntry is one (origin, destination, value) triplet of a sparse
// select-link OD matrix (spec.md §3).
type COOEntry struct {
	Origin      int64
	Destination int64
	Value       float64
}

// COOMatrix is a sparse coordinate-format matrix: the accumulated
// select-link OD contributions for one (query, demand column) pair.
type COOMatrix struct {
	Entries []COOEntry
}

// odKey identifies one OD pair as a COO accumulation key.
type odKey struct{ origin, destination int64 }

// cooBuffer accumulates (origin, destination) -> value contributions
// before being finalized into a sorted COOMatrix. Multiple routes for the
// same OD append into the same cell, matching spec.md §4.6's "append...
// into the COO buffer" wording read as an additive accumulation rather
// than a one-entry-per-route list.
type cooBuffer struct {
	values map[odKey]float64
}

func newCOOBuffer() *cooBuffer {
	return &cooBuffer{values: make(map[odKey]float64)}
}

// Add accumulates value into the (origin, destination) cell.
func (b *cooBuffer) Add(origin, destination int64, value float64) {
	b.values[odKey{origin, destination}] += value
}

// merge folds other's contributions into b, for Reduce's associative sum.
func (b *cooBuffer) merge(other *cooBuffer) {
	for k, v := range other.values {
		b.values[k] += v
	}
}

// toMatrix finalizes the buffer into a COOMatrix with entries sorted by
// (origin, destination), so repeated runs over the same inputs produce a
// deterministically-ordered matrix regardless of map iteration order.
func (b *cooBuffer) toMatrix() *COOMatrix {
	entries := make([]COOEntry, 0, len(b.values))
	for k, v := range b.values {
		entries = append(entries, COOEntry{Origin: k.origin, Destination: k.destination, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Origin != entries[j].Origin {
			return entries[i].Origin < entries[j].Origin
		}
		return entries[i].Destination < entries[j].Destination
	})
	return &COOMatrix{Entries: entries}
}
