package tensor_test

import (
	"math"
	"testing"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
	"github.com/highperformancecoder/civita/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlice_Dense fixes coordinate 2 along axis "1" of the 5×3×2
// tensor: result (a,c) reads source (a,2,c).
func TestSlice_Dense(t *testing.T) {
	arg := iota530(t)
	op := tensor.NewSlice()
	require.NoError(t, op.SetArgument(arg, tensor.Args{Dimension: "1", Val: 2}))
	assert.Equal(t, []int{5, 2}, op.Shape())
	for a := 0; a < 5; a++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, at(t, arg, a, 2, c), at(t, op, a, c))
		}
	}
}

// TestSlice_OfSpreadIsIdentity: slicing a spread-first result at any
// spread coordinate recovers the original tensor.
func TestSlice_OfSpreadIsIdentity(t *testing.T) {
	x, err := tensor.NewTensorValDims(2, 3)
	require.NoError(t, err)
	for i := 0; i < x.Size(); i++ {
		x.Set(i, float64(i))
	}

	spread := tensor.NewSpreadFirst()
	require.NoError(t, spread.SetArgument(x, tensor.Args{}))
	back := hypercube.FromXVectors(hypercube.NewXVector("back",
		coord.Dimension{Type: coord.KindValue}, coord.Num(1), coord.Num(2), coord.Num(3)))
	require.NoError(t, spread.SetSpreadDimensions(back))

	for k := 0; k < 3; k++ {
		slice := tensor.NewSlice()
		require.NoError(t, slice.SetArgument(spread, tensor.Args{Dimension: "back", Val: float64(k)}))
		require.Equal(t, x.Shape(), slice.Shape())
		for i := 0; i < x.Size(); i++ {
			want, err := x.At(i)
			require.NoError(t, err)
			got, err := slice.At(i)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

// TestSlice_Sparse projects a sparse argument's entries onto the
// reduced hypercube.
func TestSlice_Sparse(t *testing.T) {
	arg, err := tensor.NewTensorValDims(3, 3)
	require.NoError(t, err)
	require.NoError(t, arg.SetIndex(hypercube.NewIndex([]int{1, 4, 8})))
	for i := 0; i < arg.Size(); i++ {
		arg.Set(i, float64(arg.Index().At(i)))
	}

	op := tensor.NewSlice()
	require.NoError(t, op.SetArgument(arg, tensor.Args{Dimension: "1", Val: 1}))
	assert.Equal(t, []int{3}, op.Shape())
	require.Equal(t, 1, op.Index().Size())
	assert.Equal(t, 1, op.Index().At(0), "only cell (1,1) lies on the slice")

	v, err := op.At(0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	v, err = tensor.AtHC(op, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}
