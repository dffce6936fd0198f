package tensor

import (
	"fmt"
	"math"

	"github.com/highperformancecoder/civita/hypercube"
)

// Pivot reorders the axes of a tensor. Axes named in the orientation
// come first, in the given order; the rest keep their input order at
// the tail.
//
// Dense reads permute the split index on the fly. Sparse arguments are
// rebuilt into a full position map at configuration time, after which
// reads are O(1) and the on-the-fly permutation is not used.
type Pivot struct {
	base
	arg           Tensor
	permutation   []int
	permutedIndex []int
}

// NewPivot returns an unconfigured pivot.
func NewPivot() *Pivot { return &Pivot{} }

// SetArgument adopts the argument with its axes in input order; call
// SetOrientation to reorder.
func (o *Pivot) SetArgument(a Tensor, _ Args) error {
	o.arg = a
	axes := a.Hypercube().DimLabels()
	return o.SetOrientation(axes...)
}

// SetOrientation reorders the axes so the named ones come first. An
// axis name missing from the argument yields ErrUnknownAxis.
func (o *Pivot) SetOrientation(axes ...string) error {
	ahc := o.arg.Hypercube()
	pMap := make(map[string]int, ahc.Rank())
	for i := range ahc.XVectors {
		pMap[ahc.XVectors[i].Name] = i
	}
	var hc hypercube.Hypercube
	o.permutation = o.permutation[:0]
	named := make(map[string]struct{}, len(axes))
	invPermutation := make(map[int]int, ahc.Rank())
	for _, name := range axes {
		named[name] = struct{}{}
		v, ok := pMap[name]
		if !ok {
			return fmt.Errorf("%w: %q not in argument", ErrUnknownAxis, name)
		}
		invPermutation[v] = len(o.permutation)
		o.permutation = append(o.permutation, v)
		hc.XVectors = append(hc.XVectors, ahc.XVectors[v].Clone())
	}
	// remaining axes keep their input order at the tail
	for i := range ahc.XVectors {
		if err := checkCancel(); err != nil {
			return err
		}
		if _, ok := named[ahc.XVectors[i].Name]; !ok {
			invPermutation[i] = len(o.permutation)
			o.permutation = append(o.permutation, i)
			hc.XVectors = append(hc.XVectors, ahc.XVectors[i].Clone())
		}
	}
	o.hc = hc

	// permute the index vector
	pi := make(map[int]int)
	aIdx := o.arg.Index()
	for i := 0; i < aIdx.Size(); i++ {
		idx := ahc.SplitIndex(aIdx.At(i))
		pidx := make([]int, len(idx))
		for j, v := range idx {
			if err := checkCancel(); err != nil {
				return err
			}
			pidx[invPermutation[j]] = v
		}
		pi[o.hc.LinealIndex(pidx)] = i
	}
	o.idx = hypercube.IndexFromMap(pi)
	o.permutedIndex = o.permutedIndex[:0]
	for i := 0; i < o.idx.Size(); i++ {
		o.permutedIndex = append(o.permutedIndex, pi[o.idx.At(i)])
	}
	if len(o.permutedIndex) > 0 {
		o.permutation = nil // not used in the sparse case
	}
	return nil
}

// pivotIndex maps a result hypercube position back to the argument's.
func (o *Pivot) pivotIndex(i int) int {
	idx := o.hc.SplitIndex(i)
	pidx := make([]int, len(idx))
	for k, v := range idx {
		pidx[o.permutation[k]] = v
	}
	return o.arg.Hypercube().LinealIndex(pidx)
}

// At reads through to the argument under the axis permutation.
func (o *Pivot) At(i int) (float64, error) {
	if o.idx.Empty() {
		return AtHC(o.arg, o.pivotIndex(i))
	}
	if i < len(o.permutedIndex) {
		return o.arg.At(o.permutedIndex[i])
	}
	return math.NaN(), nil
}

// Timestamp returns the argument timestamp.
func (o *Pivot) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}
