package demand

import (
	"math"
	"sort"
)

// odKey identifies one OD pair as a map key.
type odKey [2]int32

// Column carries the OD-pair identity shared by both typed pipelines.
type Column struct {
	Name         string
	Origins      []int32
	Destinations []int32
}

// ColumnF32 is a single-precision sparse demand column.
type ColumnF32 struct {
	Column
	Values []float32
}

// ColumnF64 is a double-precision sparse demand column.
type ColumnF64 struct {
	Column
	Values []float64
}

// Table is a sparse, named, OD-indexed demand table (spec.md §4.4). Build
// it with AddFrame32/AddFrame64/AddDenseMatrix32/AddDenseMatrix64, then
// call Finalize before reading with Value32/Value64/NoDemand.
type Table struct {
	f32 map[string]ColumnF32
	f64 map[string]ColumnF64

	finalized  bool
	odSet      map[odKey]struct{}
	indexF32   map[string]map[odKey]float32
	indexF64   map[string]map[odKey]float64
}

// NewTable returns an empty, unfinalized Table.
func NewTable() *Table {
	return &Table{
		f32: make(map[string]ColumnF32),
		f64: make(map[string]ColumnF64),
	}
}

// checkName validates name for insertion into the pipeline identified by
// sameType (t.f32 or t.f64) against otherType (the other pipeline): a
// clash within the same pipeline is a duplicate column, a clash in the
// other pipeline is a precision mismatch.
func checkName[A, B any](t *Table, name string, sameType map[string]A, otherType map[string]B) error {
	if t.finalized {
		return ErrTableFinalized
	}
	if _, ok := sameType[name]; ok {
		return ErrDuplicateDemandColumn
	}
	if _, ok := otherType[name]; ok {
		return ErrTypeMismatch
	}
	return nil
}

// AddFrame32 adds an already-sparse single-precision column. origins,
// destinations, and values must have equal length; zero or NaN values are
// kept as given (callers constructing a frame directly are assumed to
// have already decided what belongs in it — only the dense-matrix path
// drops zero/NaN automatically).
func (t *Table) AddFrame32(name string, origins, destinations []int32, values []float32) error {
	if err := checkName(t, name, t.f32, t.f64); err != nil {
		return err
	}
	if len(origins) != len(destinations) || len(origins) != len(values) {
		return ErrFrameLengthMismatch
	}
	t.f32[name] = ColumnF32{
		Column: Column{Name: name, Origins: origins, Destinations: destinations},
		Values: values,
	}
	return nil
}

// AddFrame64 is AddFrame32's double-precision counterpart.
func (t *Table) AddFrame64(name string, origins, destinations []int32, values []float64) error {
	if err := checkName(t, name, t.f64, t.f32); err != nil {
		return err
	}
	if len(origins) != len(destinations) || len(origins) != len(values) {
		return ErrFrameLengthMismatch
	}
	t.f64[name] = ColumnF64{
		Column: Column{Name: name, Origins: origins, Destinations: destinations},
		Values: values,
	}
	return nil
}

// AddDenseMatrix32 ingests a dense nZones x nZones single-precision OD
// matrix, converting it to a sparse column by dropping zero and NaN
// cells (spec.md §4.4's "dense-matrix-to-sparse conversion").
func (t *Table) AddDenseMatrix32(name string, nZones int32, dense [][]float32) error {
	if err := checkName(t, name, t.f32, t.f64); err != nil {
		return err
	}
	if err := checkSquare(len(dense), nZones, func(i int) int { return len(dense[i]) }); err != nil {
		return err
	}

	var origins, destinations []int32
	var values []float32
	for o := int32(0); o < nZones; o++ {
		for d := int32(0); d < nZones; d++ {
			v := dense[o][d]
			if v == 0 || math.IsNaN(float64(v)) {
				continue
			}
			origins = append(origins, o)
			destinations = append(destinations, d)
			values = append(values, v)
		}
	}
	t.f32[name] = ColumnF32{
		Column: Column{Name: name, Origins: origins, Destinations: destinations},
		Values: values,
	}
	return nil
}

// AddDenseMatrix64 is AddDenseMatrix32's double-precision counterpart.
func (t *Table) AddDenseMatrix64(name string, nZones int32, dense [][]float64) error {
	if err := checkName(t, name, t.f64, t.f32); err != nil {
		return err
	}
	if err := checkSquare(len(dense), nZones, func(i int) int { return len(dense[i]) }); err != nil {
		return err
	}

	var origins, destinations []int32
	var values []float64
	for o := int32(0); o < nZones; o++ {
		for d := int32(0); d < nZones; d++ {
			v := dense[o][d]
			if v == 0 || math.IsNaN(v) {
				continue
			}
			origins = append(origins, o)
			destinations = append(destinations, d)
			values = append(values, v)
		}
	}
	t.f64[name] = ColumnF64{
		Column: Column{Name: name, Origins: origins, Destinations: destinations},
		Values: values,
	}
	return nil
}

func checkSquare(rows int, nZones int32, rowLen func(int) int) error {
	if int32(rows) != nZones {
		return ErrDenseMatrixNotSquare
	}
	for i := 0; i < rows; i++ {
		if int32(rowLen(i)) != nZones {
			return ErrDenseMatrixNotSquare
		}
	}
	return nil
}

// Finalize freezes the table and builds the lookup indexes Value32,
// Value64, and NoDemand rely on. Calling Finalize twice is a no-op.
func (t *Table) Finalize() error {
	if t.finalized {
		return nil
	}
	t.odSet = make(map[odKey]struct{})
	t.indexF32 = make(map[string]map[odKey]float32, len(t.f32))
	t.indexF64 = make(map[string]map[odKey]float64, len(t.f64))

	for name, col := range t.f32 {
		idx := make(map[odKey]float32, len(col.Values))
		for i, v := range col.Values {
			key := odKey{col.Origins[i], col.Destinations[i]}
			idx[key] = v
			t.odSet[key] = struct{}{}
		}
		t.indexF32[name] = idx
	}
	for name, col := range t.f64 {
		idx := make(map[odKey]float64, len(col.Values))
		for i, v := range col.Values {
			key := odKey{col.Origins[i], col.Destinations[i]}
			idx[key] = v
			t.odSet[key] = struct{}{}
		}
		t.indexF64[name] = idx
	}

	t.finalized = true
	return nil
}

// IsEmpty reports whether the table has no columns at all (neither
// pipeline has a single entry added).
func (t *Table) IsEmpty() bool {
	return len(t.f32) == 0 && len(t.f64) == 0
}

// NoDemand reports whether no column — in either pipeline — carries a
// value for the (origin, destination) pair, letting an orchestrator skip
// enumeration work entirely for that OD. Panics if Finalize has not been
// called, the same programmer-error-panics convention netgraph.Graph
// uses for out-of-range index access.
func (t *Table) NoDemand(origin, destination int32) bool {
	if !t.finalized {
		panic("demand: NoDemand called before Finalize")
	}
	_, ok := t.odSet[odKey{origin, destination}]
	return !ok
}

// ODPairs returns every (origin, destination) pair carrying demand in at
// least one column — the union spec.md §4.4 describes — sorted by origin
// then destination so callers that fan work out across workers get a
// deterministic, reproducible partitioning. Panics if Finalize has not
// been called.
func (t *Table) ODPairs() [][2]int32 {
	if !t.finalized {
		panic("demand: ODPairs called before Finalize")
	}
	pairs := make([][2]int32, 0, len(t.odSet))
	for k := range t.odSet {
		pairs = append(pairs, [2]int32{k[0], k[1]})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Value32 returns the value of column name at (origin, destination), and
// whether that column has an entry there at all. Panics if Finalize has
// not been called.
func (t *Table) Value32(name string, origin, destination int32) (float32, bool) {
	if !t.finalized {
		panic("demand: Value32 called before Finalize")
	}
	idx, ok := t.indexF32[name]
	if !ok {
		return 0, false
	}
	v, ok := idx[odKey{origin, destination}]
	return v, ok
}

// Value64 is Value32's double-precision counterpart.
func (t *Table) Value64(name string, origin, destination int32) (float64, bool) {
	if !t.finalized {
		panic("demand: Value64 called before Finalize")
	}
	idx, ok := t.indexF64[name]
	if !ok {
		return 0, false
	}
	v, ok := idx[odKey{origin, destination}]
	return v, ok
}

// ColumnNames32 returns the names of all single-precision columns, in
// unspecified order.
func (t *Table) ColumnNames32() []string {
	names := make([]string, 0, len(t.f32))
	for name := range t.f32 {
		names = append(names, name)
	}
	return names
}

// ColumnNames64 returns the names of all double-precision columns, in
// unspecified order.
func (t *Table) ColumnNames64() []string {
	names := make([]string, 0, len(t.f64))
	for name := range t.f64 {
		names = append(names, name)
	}
	return names
}
