package tensor_test

import (
	"math"
	"testing"

	"github.com/highperformancecoder/civita/hypercube"
	"github.com/highperformancecoder/civita/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iota530 returns the 5×3×2 test tensor with each cell holding its
// physical offset.
func iota530(t *testing.T) *tensor.TensorVal {
	t.Helper()
	tv, err := tensor.NewTensorValDims(5, 3, 2)
	require.NoError(t, err)
	for i := 0; i < tv.Size(); i++ {
		tv.Set(i, float64(i))
	}
	return tv
}

func at(t *testing.T, x tensor.Tensor, split ...int) float64 {
	t.Helper()
	v, err := tensor.AtCoords(x, split...)
	require.NoError(t, err)
	return v
}

// TestTensorVal_VectorIndex follows the dense-then-sparse scenario:
// re-indexing the same tensor remaps hypercube positions onto compact
// physical storage.
func TestTensorVal_VectorIndex(t *testing.T) {
	tv := iota530(t)
	assert.Equal(t, 8.0, at(t, tv, 3, 1, 0))

	require.NoError(t, tv.SetIndex(hypercube.NewIndex([]int{1, 4, 8, 12})))
	require.Equal(t, 4, tv.Size())
	for i := 0; i < tv.Size(); i++ {
		tv.Set(i, float64(i))
	}
	assert.Equal(t, 2.0, at(t, tv, 3, 1, 0), "hypercube position 8 sits at physical offset 2")
	assert.True(t, math.IsNaN(at(t, tv, 2, 1, 0)), "unindexed cells read as NaN")
}

// TestTensorVal_AssignDenseOrSparse verifies the half-volume rule:
// small maps become sparse, larger ones dense with NaN background.
func TestTensorVal_AssignDenseOrSparse(t *testing.T) {
	var tv tensor.TensorVal
	hc := hypercube.New(3, 3)

	sparseData := map[int]float64{1: 1, 3: 3, 8: 8}
	require.NoError(t, tv.Assign(hc, sparseData))
	assert.Equal(t, len(sparseData), tv.Size())
	for k, v := range sparseData {
		got, err := tensor.AtHC(&tv, k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	denseData := map[int]float64{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5}
	require.NoError(t, tv.Assign(hc, denseData))
	assert.Equal(t, hc.NumElements(), tv.Size())
	for k, v := range denseData {
		got, err := tensor.AtHC(&tv, k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for i := 0; i < tv.Size(); i++ {
		if _, ok := denseData[i]; !ok {
			got, err := tv.At(i)
			require.NoError(t, err)
			assert.True(t, math.IsNaN(got))
		}
	}
}

// TestTensorVal_AssignSlice verifies dense assignment with trim and
// NaN padding to the hypercube's element count.
func TestTensorVal_AssignSlice(t *testing.T) {
	tv, err := tensor.NewTensorValDims(2, 3)
	require.NoError(t, err)

	require.NoError(t, tv.AssignSlice([]float64{0, 1, 2, 3, 4, 5, 99}))
	assert.Equal(t, 6, tv.Size())
	assert.Equal(t, 5.0, at(t, tv, 1, 2))

	require.NoError(t, tv.AssignSlice([]float64{7, 8}))
	assert.Equal(t, 6, tv.Size())
	assert.Equal(t, 7.0, at(t, tv, 0, 0))
	assert.True(t, math.IsNaN(at(t, tv, 0, 1)), "short data pads with NaN")
}

// TestTensorVal_TimestampAdvances verifies that writes and shape or
// index changes move the logical timestamp forward.
func TestTensorVal_TimestampAdvances(t *testing.T) {
	tv, err := tensor.NewTensorValDims(2, 2)
	require.NoError(t, err)
	t0 := tv.Timestamp()

	tv.Set(0, 1)
	t1 := tv.Timestamp()
	assert.True(t, t0.Before(t1))

	require.NoError(t, tv.SetIndex(hypercube.NewIndex([]int{1, 3})))
	assert.True(t, t1.Before(tv.Timestamp()))
}

// TestTensorVal_AssignTensor materializes a lazy scan into a value
// tensor, preserving rank, shape and every element.
func TestTensorVal_AssignTensor(t *testing.T) {
	arg := iota530(t)
	scan := tensor.NewScan(tensor.SumFold)
	require.NoError(t, scan.SetArgument(arg, tensor.Args{Dimension: "0"}))
	require.Equal(t, arg.Rank(), scan.Rank())
	require.Greater(t, scan.Size(), 1)

	var tv tensor.TensorVal
	require.NoError(t, tv.AssignTensor(scan))
	assert.Equal(t, scan.Size(), tv.Size())
	assert.Equal(t, scan.Shape(), tv.Shape())
	for i := 0; i < tv.Size(); i++ {
		want, err := scan.At(i)
		require.NoError(t, err)
		got, err := tv.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestTensorVal_Scale verifies the scalar-multiple copy.
func TestTensorVal_Scale(t *testing.T) {
	tv := iota530(t)
	doubled, err := tensor.Scale(2, tv)
	require.NoError(t, err)
	assert.Equal(t, 16.0, at(t, doubled, 3, 1, 0))
	assert.Equal(t, 8.0, at(t, tv, 3, 1, 0), "source untouched")
}

// TestTensorVal_String summarizes axes.
func TestTensorVal_String(t *testing.T) {
	tv, err := tensor.NewTensorValDims(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "[{0(2):value },{1(3):value },]", tv.String())
}
