package tensor

import (
	"github.com/highperformancecoder/civita/hypercube"
)

// Slice fixes one coordinate along a named axis; the result drops that
// axis. Dense arguments are addressed with stride arithmetic; sparse
// ones are projected onto the reduced hypercube once at configuration
// time for O(1) reads.
type Slice struct {
	base
	arg        Tensor
	sliceIndex int
	split      int // product of the axis sizes before the sliced one
	stride     int // split · size of the sliced axis
	argIndex   []int
}

// NewSlice returns an unconfigured slice operator.
func NewSlice() *Slice { return &Slice{} }

// SetArgument configures the argument; args.Dimension names the sliced
// axis and args.Val the fixed coordinate along it.
func (o *Slice) SetArgument(a Tensor, args Args) error {
	o.arg = a
	o.sliceIndex = int(args.Val)
	o.argIndex = nil
	o.idx.Clear()
	if a == nil {
		return nil
	}
	ahc := a.Hypercube()
	var hc hypercube.Hypercube
	o.split = 1
	splitAxis, found := 0, false
	for i := range ahc.XVectors {
		xv := &ahc.XVectors[i]
		if xv.Name == args.Dimension {
			o.stride = o.split * xv.Size()
			found = true
			continue
		}
		if !found {
			o.split *= xv.Size()
			splitAxis++
		}
		hc.XVectors = append(hc.XVectors, xv.Clone())
	}
	if !found {
		o.split, o.stride = 1, 1
	}
	o.hc = hc

	if !found || a.Index().Empty() {
		return nil
	}
	// project the argument's index entries lying on the slice
	ai := make(map[int]int)
	aIdx := a.Index()
	for k := 0; k < aIdx.Size(); k++ {
		if err := checkCancel(); err != nil {
			return err
		}
		split := ahc.SplitIndex(aIdx.At(k))
		if split[splitAxis] == o.sliceIndex {
			split = append(split[:splitAxis], split[splitAxis+1:]...)
			ai[hc.LinealIndex(split)] = k
		}
	}
	o.idx = hypercube.IndexFromMap(ai)
	o.argIndex = make([]int, 0, len(ai))
	for i := 0; i < o.idx.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		o.argIndex = append(o.argIndex, ai[o.idx.At(i)])
	}
	return nil
}

// At reads through to the argument: stride arithmetic when dense, the
// projected index when sparse.
func (o *Slice) At(i int) (float64, error) {
	if o.idx.Empty() {
		q, r := i/o.split, i%o.split
		return AtHC(o.arg, q*o.stride+o.sliceIndex*o.split+r)
	}
	return o.arg.At(o.argIndex[i])
}

// Timestamp returns the argument timestamp.
func (o *Slice) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}
