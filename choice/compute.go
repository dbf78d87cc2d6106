package choice

import (
	"math"
	"sort"

	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/warnings"
	"gonum.org/v1/gonum/floats"
)

// Compute scores routes against the Path-Size Logit model of spec.md
// §4.5, in the five steps that section numbers: cost, binary-logit
// cutoff mask, frequency, path overlap, PSL probability. routes must be
// non-empty (an OD with an empty RouteSet is the caller's responsibility
// to special-case before calling Compute, per enumerator's own "o == d /
// unreachable yields an empty set" contract).
func Compute(routes []enumerator.Route, g *netgraph.Graph, cfg Config) (*Result, []warnings.Warning, error) {
	if cfg.Beta < 0 {
		return nil, nil, ErrInvalidBeta
	}
	if cfg.CutoffProb < 0.5 || cfg.CutoffProb > 1.0 {
		return nil, nil, ErrInvalidCutoffProb
	}
	n := len(routes)
	if n == 0 {
		return nil, nil, ErrEmptyRouteSet
	}

	var warn warnings.Collector

	cost := make([]float64, n)
	cMin := math.MaxFloat64
	for j, route := range routes {
		var c float64
		for _, link := range route {
			c += g.Cost(link)
		}
		cost[j] = c
		if c < cMin {
			cMin = c
		}
	}

	mask := make([]bool, n)
	pathOverlap := make([]float64, n)
	probability := make([]float64, n)

	if cMin == 0 {
		// spec.md §4.5 item 2: any zero-cost route masks the entire set.
		warn.Add("zero_cost_route_set", "route set contains a zero-cost route; entire set masked")
		return &Result{Cost: cost, Mask: mask, PathOverlap: pathOverlap, Probability: probability}, warn, nil
	}

	cutoff := cMin + inverseBinaryLogit(cfg.CutoffProb)
	for j, c := range cost {
		mask[j] = c <= cutoff
	}

	freq := linkFrequency(routes, mask)

	for j, route := range routes {
		if !mask[j] {
			continue
		}
		var sum float64
		for _, link := range route {
			sum += g.Cost(link) / float64(freq[link])
		}
		pathOverlap[j] = sum / cost[j]
	}

	unmasked := make([]int, 0, n)
	for j, m := range mask {
		if m {
			unmasked = append(unmasked, j)
		}
	}
	terms := make([]float64, len(unmasked))
	for _, j := range unmasked {
		for i, k := range unmasked {
			terms[i] = math.Pow(pathOverlap[k]/pathOverlap[j], cfg.Beta) * math.Exp(cost[j]-cost[k])
		}
		probability[j] = 1.0 / floats.Sum(terms)
	}

	return &Result{Cost: cost, Mask: mask, PathOverlap: pathOverlap, Probability: probability}, warn, nil
}

// inverseBinaryLogit is the inverse of the binary logit sigmoid
// P = 1/(1+exp(-x)), solved for x given a target probability p:
// x = ln(p/(1-p)). spec.md §4.5 names it inverse_binary_logit(p, 0, 1);
// the 0 and 1 arguments are the binary logit's two reference utilities,
// which collapse the general a + (b-a)*ln(p/(1-p)) form to this plain
// logit-of-p since a=0, b=1.
func inverseBinaryLogit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// linkFrequency counts, per compact link ID, how many unmasked routes
// contain it — by sorting the flattened (link, route index) list and
// run-length counting, the same sort-then-count idiom
// matrix/impl_statistics.go uses for its own reductions.
func linkFrequency(routes []enumerator.Route, mask []bool) map[int32]int {
	type hit struct {
		link int32
		od   int // owning route index, unused beyond sort stability
	}
	var hits []hit
	for j, route := range routes {
		if !mask[j] {
			continue
		}
		for _, link := range route {
			hits = append(hits, hit{link: link, od: j})
		}
	}
	sort.Slice(hits, func(i, k int) bool { return hits[i].link < hits[k].link })

	freq := make(map[int32]int, len(hits))
	i := 0
	for i < len(hits) {
		link := hits[i].link
		k := i
		for k < len(hits) && hits[k].link == link {
			k++
		}
		freq[link] = k - i
		i = k
	}
	return freq
}
