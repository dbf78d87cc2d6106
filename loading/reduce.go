package loading

import "gonum.org/v1/gonum/floats"

// Result is the post-reduction output of the Link Loading Engine
// (spec.md §3/§6): total network-link loads per demand column,
// select-link loads per (query, column), and select-link OD matrices per
// (query, column).
type Result struct {
	Total        map[string][]float64
	SelectLink   map[string]map[string][]float64
	SelectLinkOD map[string]map[string]*COOMatrix
}

// Reduce sums every worker Accumulator in accs into a single Result — an
// associative fold (spec.md §5: "link loadings are associative sums;
// bitwise equality across thread counts is not guaranteed, but
// statistical equivalence is"). Dense per-column summation uses
// gonum.org/v1/gonum/floats.Add; the sparse select-link OD buffers are
// merged by map accumulation, then sorted once at the end (cooBuffer.
// toMatrix), not per partial sum.
func Reduce(accs []*Accumulator) *Result {
	result := &Result{
		Total:        make(map[string][]float64),
		SelectLink:   make(map[string]map[string][]float64),
		SelectLinkOD: make(map[string]map[string]*COOMatrix),
	}
	if len(accs) == 0 {
		return result
	}

	for col, vec := range accs[0].total {
		result.Total[col] = make([]float64, len(vec))
	}
	for qName, cols := range accs[0].selectLink {
		colMap := make(map[string][]float64, len(cols))
		for col, vec := range cols {
			colMap[col] = make([]float64, len(vec))
		}
		result.SelectLink[qName] = colMap
	}
	odBuffers := make(map[string]map[string]*cooBuffer, len(accs[0].selectLinkOD))
	for qName, cols := range accs[0].selectLinkOD {
		colMap := make(map[string]*cooBuffer, len(cols))
		for col := range cols {
			colMap[col] = newCOOBuffer()
		}
		odBuffers[qName] = colMap
	}

	for _, acc := range accs {
		for col, vec := range acc.total {
			floats.Add(result.Total[col], vec)
		}
		for qName, cols := range acc.selectLink {
			for col, vec := range cols {
				floats.Add(result.SelectLink[qName][col], vec)
			}
		}
		for qName, cols := range acc.selectLinkOD {
			for col, buf := range cols {
				odBuffers[qName][col].merge(buf)
			}
		}
	}

	for qName, cols := range odBuffers {
		colMap := make(map[string]*COOMatrix, len(cols))
		for col, buf := range cols {
			colMap[col] = buf.toMatrix()
		}
		result.SelectLinkOD[qName] = colMap
	}

	return result
}
