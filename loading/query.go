package loading

import "github.com/katalvlaran/routechoice/enumerator"

// SelectLinkQuery is a named select-link query (spec.md §3/§4.6): a route
// satisfies it if it contains every compact link of at least one of its
// AND-sets, i.e. the query is OR(AND(l11, l12, ...), AND(l21, ...), ...).
type SelectLinkQuery struct {
	Name    string
	ANDSets [][]int32
}

// Matches reports whether route satisfies q, using the AND-set countdown
// short-circuit of spec.md §4.6: each AND-set starts at its own size and
// counts down as its links are seen in route, qualifying (and stopping
// the scan) the instant any AND-set's remaining count reaches zero. This
// assumes link-uniqueness within one route, already guaranteed by
// netgraph's simple-path invariant.
func (q SelectLinkQuery) Matches(route enumerator.Route) bool {
	remaining := make([]int, len(q.ANDSets))
	linkToSets := make(map[int32][]int)
	for i, set := range q.ANDSets {
		remaining[i] = len(set)
		if remaining[i] == 0 {
			return true // vacuously-true empty AND-set
		}
		for _, link := range set {
			linkToSets[link] = append(linkToSets[link], i)
		}
	}

	for _, link := range route {
		for _, idx := range linkToSets[link] {
			remaining[idx]--
			if remaining[idx] == 0 {
				return true
			}
		}
	}
	return false
}
