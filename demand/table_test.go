package demand_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/routechoice/demand"
	"github.com/stretchr/testify/require"
)

func TestTable_AddFrameAndLookup(t *testing.T) {
	tbl := demand.NewTable()
	require.NoError(t, tbl.AddFrame64("auto", []int32{1, 2}, []int32{2, 3}, []float64{10.5, 0}))
	require.NoError(t, tbl.Finalize())

	v, ok := tbl.Value64("auto", 1, 2)
	require.True(t, ok)
	require.Equal(t, 10.5, v)

	v, ok = tbl.Value64("auto", 2, 3)
	require.True(t, ok)
	require.Equal(t, 0.0, v)

	_, ok = tbl.Value64("auto", 9, 9)
	require.False(t, ok)
}

func TestTable_DuplicateNameRejected(t *testing.T) {
	tbl := demand.NewTable()
	require.NoError(t, tbl.AddFrame32("auto", []int32{1}, []int32{2}, []float32{1}))
	err := tbl.AddFrame32("auto", []int32{1}, []int32{2}, []float32{2})
	require.ErrorIs(t, err, demand.ErrDuplicateDemandColumn)
}

func TestTable_TypeMismatchRejected(t *testing.T) {
	tbl := demand.NewTable()
	require.NoError(t, tbl.AddFrame32("auto", []int32{1}, []int32{2}, []float32{1}))
	err := tbl.AddFrame64("auto", []int32{1}, []int32{2}, []float64{1})
	require.ErrorIs(t, err, demand.ErrTypeMismatch)
}

func TestTable_FrameLengthMismatch(t *testing.T) {
	tbl := demand.NewTable()
	err := tbl.AddFrame64("auto", []int32{1, 2}, []int32{2}, []float64{1, 2})
	require.ErrorIs(t, err, demand.ErrFrameLengthMismatch)
}

func TestTable_AddDenseMatrixDropsZeroAndNaN(t *testing.T) {
	tbl := demand.NewTable()
	dense := [][]float64{
		{0, 5, math.NaN()},
		{3, 0, 0},
		{0, 0, 7},
	}
	require.NoError(t, tbl.AddDenseMatrix64("truck", 3, dense))
	require.NoError(t, tbl.Finalize())

	v, ok := tbl.Value64("truck", 0, 1)
	require.True(t, ok)
	require.Equal(t, 5.0, v)

	_, ok = tbl.Value64("truck", 0, 0)
	require.False(t, ok, "zero cells are dropped")
	_, ok = tbl.Value64("truck", 0, 2)
	require.False(t, ok, "NaN cells are dropped")

	v, ok = tbl.Value64("truck", 2, 2)
	require.True(t, ok)
	require.Equal(t, 7.0, v)
}

func TestTable_DenseMatrixNotSquare(t *testing.T) {
	tbl := demand.NewTable()
	err := tbl.AddDenseMatrix64("bad", 2, [][]float64{{1, 2}})
	require.ErrorIs(t, err, demand.ErrDenseMatrixNotSquare)
}

func TestTable_NoDemand(t *testing.T) {
	tbl := demand.NewTable()
	require.NoError(t, tbl.AddFrame64("auto", []int32{1}, []int32{2}, []float64{4}))
	require.NoError(t, tbl.Finalize())

	require.False(t, tbl.NoDemand(1, 2))
	require.True(t, tbl.NoDemand(5, 6))
}

func TestTable_IsEmpty(t *testing.T) {
	tbl := demand.NewTable()
	require.True(t, tbl.IsEmpty())
	require.NoError(t, tbl.AddFrame32("auto", nil, nil, nil))
	require.False(t, tbl.IsEmpty())
}

func TestTable_FinalizeFreezesTable(t *testing.T) {
	tbl := demand.NewTable()
	require.NoError(t, tbl.AddFrame64("auto", []int32{1}, []int32{2}, []float64{1}))
	require.NoError(t, tbl.Finalize())

	err := tbl.AddFrame64("transit", []int32{1}, []int32{2}, []float64{1})
	require.ErrorIs(t, err, demand.ErrTableFinalized)
}
