package enumerator

// BannedSet is an immutable set of compact link IDs forbidden for one
// BFS-LE queue entry. Hashing is order-independent (commutative): two
// BannedSets containing the same links in different insertion order must
// collide, since BFS-LE's visited lookup is keyed on set membership, not
// insertion history — this is the "graph of subgraphs" identity spec.md
// §9's design note calls for.
type BannedSet struct {
	links map[int32]struct{}
	hash  uint64
}

// NewBannedSet returns the empty set (the BFS-LE root queue entry).
func NewBannedSet() *BannedSet {
	return &BannedSet{links: make(map[int32]struct{})}
}

// mix64 is a SplitMix64-style finalizer, the same bit-mixing idiom
// tsp/rng.go's deriveSeed uses to turn a plain integer into a
// well-distributed 64-bit value.
func mix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	return x
}

// With returns a new BannedSet equal to the receiver plus link. The
// receiver is never mutated: BFS-LE queue entries are shared structurally
// (copy-on-write), matching Workspace's own copy-on-write discipline for
// per-worker head[] arrays.
func (b *BannedSet) With(link int32) *BannedSet {
	next := &BannedSet{
		links: make(map[int32]struct{}, len(b.links)+1),
		hash:  b.hash,
	}
	for l := range b.links {
		next.links[l] = struct{}{}
	}
	if _, already := next.links[link]; !already {
		next.links[link] = struct{}{}
		next.hash += mix64(uint64(uint32(link)) + 1) // +1 so link 0 still perturbs the sum
	}
	return next
}

// Contains reports whether link is banned in this set.
func (b *BannedSet) Contains(link int32) bool {
	_, ok := b.links[link]
	return ok
}

// Hash returns the set's order-independent hash. Sums of per-element
// mixes collide far less than a plain XOR-fold would, at the cost of
// needing Equal to resolve genuine collisions.
func (b *BannedSet) Hash() uint64 { return b.hash }

// Equal reports whether two BannedSets contain exactly the same links,
// used to resolve hash collisions in BFS-LE's visited index.
func (b *BannedSet) Equal(other *BannedSet) bool {
	if len(b.links) != len(other.links) {
		return false
	}
	for l := range b.links {
		if _, ok := other.links[l]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of banned links.
func (b *BannedSet) Len() int { return len(b.links) }

// ForEach calls fn once per banned link, in unspecified order.
func (b *BannedSet) ForEach(fn func(link int32)) {
	for l := range b.links {
		fn(l)
	}
}
