package tensor

import (
	"fmt"
	"math"

	"github.com/highperformancecoder/civita/hypercube"
)

// PermuteAxis reorders — and may drop — the entries of one named axis
// according to a permutation of source positions. The result axis
// entries become arg.axis[p[j]] for every in-range p[j].
//
// Rank-1 arguments skip the axis-name match and permute axis 0
// unconditionally.
type PermuteAxis struct {
	base
	arg           Tensor
	axis          int
	permutation   []int
	permutedIndex []int
}

// NewPermuteAxis returns an unconfigured axis permutation.
func NewPermuteAxis() *PermuteAxis { return &PermuteAxis{} }

// SetArgument adopts the argument and seeds the identity permutation
// over the axis named by args.Dimension; call SetPermutation to
// reorder. A name missing from a rank>1 argument yields
// ErrUnknownAxis.
func (o *PermuteAxis) SetArgument(a Tensor, args Args) error {
	o.arg = a
	o.hc = a.Hypercube().Clone()
	o.idx = a.Index().Clone()
	o.axis = 0
	if len(o.hc.XVectors) != 1 { // ignore named axis for vectors
		o.axis = len(o.hc.XVectors)
		for i := range o.hc.XVectors {
			if o.hc.XVectors[i].Name == args.Dimension {
				o.axis = i
				break
			}
		}
	}
	if o.axis == len(o.hc.XVectors) {
		return fmt.Errorf("%w: %q", ErrUnknownAxis, args.Dimension)
	}
	o.permutation = o.permutation[:0]
	for i := 0; i < o.hc.XVectors[o.axis].Size(); i++ {
		o.permutation = append(o.permutation, i)
	}
	return nil
}

// SetPermutation installs the source-position list p, rebuilding the
// axis entries and, for sparse arguments, remapping the index.
func (o *PermuteAxis) SetPermutation(p []int) error {
	o.permutation = append([]int(nil), p...)
	axv := &o.arg.Hypercube().XVectors[o.axis]
	xv := &o.hc.XVectors[o.axis]
	xv.Values = xv.Values[:0]
	for _, pi := range o.permutation {
		if err := checkCancel(); err != nil {
			return err
		}
		if pi < axv.Size() {
			xv.Values = append(xv.Values, axv.Values[pi])
		}
	}
	reverse := make(map[int]int, len(o.permutation))
	for i, pi := range o.permutation {
		if err := checkCancel(); err != nil {
			return err
		}
		reverse[pi] = i
	}
	indices := make(map[int]int)
	aIdx := o.arg.Index()
	for i := 0; i < aIdx.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		split := o.arg.Hypercube().SplitIndex(aIdx.At(i))
		if ri, ok := reverse[split[o.axis]]; ok && ri < axv.Size() {
			split[o.axis] = ri
			indices[o.hc.LinealIndex(split)] = i
		}
	}
	o.idx = hypercube.IndexFromMap(indices)
	o.permutedIndex = o.permutedIndex[:0]
	for i := 0; i < o.idx.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		o.permutedIndex = append(o.permutedIndex, indices[o.idx.At(i)])
	}
	return nil
}

// At reads through to the argument under the axis-entry permutation.
func (o *PermuteAxis) At(i int) (float64, error) {
	if o.idx.Empty() {
		split := o.hc.SplitIndex(i)
		if o.axis >= len(split) {
			return math.NaN(), nil
		}
		split[o.axis] = o.permutation[split[o.axis]]
		return AtHC(o.arg, o.arg.Hypercube().LinealIndex(split))
	}
	return o.arg.At(o.permutedIndex[i])
}

// Timestamp returns the argument timestamp.
func (o *PermuteAxis) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}
