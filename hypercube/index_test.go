package hypercube_test

import (
	"testing"

	"github.com/highperformancecoder/civita/hypercube"
	"github.com/stretchr/testify/assert"
)

// TestIndex_NewSortsAndDedups verifies the sorted, duplicate-free
// invariant on construction from arbitrary input.
func TestIndex_NewSortsAndDedups(t *testing.T) {
	ix := hypercube.NewIndex([]int{8, 1, 4, 8, 1, 12})
	assert.True(t, ix.Sorted())
	assert.Equal(t, 4, ix.Size())
	assert.Equal(t, []int{1, 4, 8, 12}, []int{ix.At(0), ix.At(1), ix.At(2), ix.At(3)})
}

// TestIndex_DenseMarker verifies that the empty index degrades At to
// the identity.
func TestIndex_DenseMarker(t *testing.T) {
	var ix hypercube.Index
	assert.True(t, ix.Empty())
	assert.Equal(t, 7, ix.At(7))
	assert.Equal(t, 0, ix.Size())
}

// TestIndex_LinealOffset verifies lookup of present and absent
// positions: present ⇔ offset < Size().
func TestIndex_LinealOffset(t *testing.T) {
	ix := hypercube.NewIndex([]int{1, 4, 8, 12})
	assert.Equal(t, 0, ix.LinealOffset(1))
	assert.Equal(t, 2, ix.LinealOffset(8))
	assert.Equal(t, ix.Size(), ix.LinealOffset(7), "absent positions return the size sentinel")
	assert.True(t, ix.Contains(12))
	assert.False(t, ix.Contains(0))

	ix.Clear()
	assert.True(t, ix.Empty())
}

// TestIndexFromMap verifies construction from position-keyed maps.
func TestIndexFromMap(t *testing.T) {
	ix := hypercube.IndexFromMap(map[int]float64{12: 1, 1: 2, 8: 3, 4: 4})
	assert.True(t, ix.Sorted())
	assert.Equal(t, []int{1, 4, 8, 12}, []int{ix.At(0), ix.At(1), ix.At(2), ix.At(3)})
}
