package tensor

import (
	"math"
	"strconv"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
)

// Meld overlays same-shaped tensors: each cell takes the first finite
// argument value, NaN when no argument covers it. All arguments must
// share one hypercube; the caller upholds this invariant.
type Meld struct {
	base
	args []Tensor
}

// NewMeld returns an unconfigured meld.
func NewMeld() *Meld { return &Meld{} }

// SetArgumentList configures the overlay set. The result is sparse —
// over the union of the argument indices — only when every argument is
// sparse; one dense argument makes the result dense.
func (o *Meld) SetArgumentList(a []Tensor, _ Args) error {
	if len(a) == 0 {
		return nil
	}
	o.args = a
	o.hc = a[0].Hypercube().Clone()
	o.idx.Clear()
	allSparse := true
	for _, t := range a {
		if t.Index().Empty() {
			allSparse = false
			break
		}
	}
	if !allSparse {
		return nil
	}
	var union []int
	for _, t := range a {
		idx := t.Index()
		for j := 0; j < idx.Size(); j++ {
			if err := checkCancel(); err != nil {
				return err
			}
			union = append(union, idx.At(j))
		}
	}
	o.idx = hypercube.NewIndex(union)
	return nil
}

// At returns the first finite argument value at this position.
func (o *Meld) At(i int) (float64, error) {
	hcIdx := o.idx.At(i)
	for _, t := range o.args {
		v, err := AtHC(t, hcIdx)
		if err != nil {
			return 0, err
		}
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
	}
	return math.NaN(), nil
}

// Timestamp returns the newest argument timestamp.
func (o *Meld) Timestamp() Timestamp { return maxTimestamp(o.args) }

// Merge stacks same-shaped tensors along a fresh axis whose string
// coordinates are "0","1",…. All arguments must share one hypercube;
// the caller upholds this invariant.
type Merge struct {
	base
	args      []Tensor
	sliceSize int
}

// NewMerge returns an unconfigured merge.
func NewMerge() *Merge { return &Merge{} }

// SetArgumentList configures the stack; args.Dimension names the new
// axis. When the stack fits the addressable range and its stored
// entries cover less than half the output volume, a sparse index is
// built with each argument's entries offset by its slice.
func (o *Merge) SetArgumentList(a []Tensor, opArgs Args) error {
	if len(a) == 0 {
		return nil
	}
	o.args = a
	hc := a[0].Hypercube().Clone()
	xv := hypercube.XVector{Name: opArgs.Dimension, Dimension: coord.Dimension{Type: coord.KindString}}
	for i := range a {
		if err := xv.PushBack(strconv.Itoa(i)); err != nil {
			return err
		}
	}
	hc.XVectors = append(hc.XVectors, xv)
	o.hc = hc
	o.idx.Clear()
	o.sliceSize = a[0].Hypercube().NumElements()

	if o.hc.LogNumElements() >= math.Log(float64(math.MaxInt)) {
		// cannot address a full index; stay dense
		return nil
	}
	total := 0
	for _, t := range a {
		total += t.Size()
	}
	if total >= o.hc.NumElements()/2 {
		return nil
	}
	var union []int
	for i, t := range a {
		idx := t.Index()
		if idx.Empty() {
			for j := 0; j < t.Size(); j++ {
				if err := checkCancel(); err != nil {
					return err
				}
				union = append(union, i*o.sliceSize+j)
			}
		} else {
			for j := 0; j < idx.Size(); j++ {
				if err := checkCancel(); err != nil {
					return err
				}
				union = append(union, i*o.sliceSize+idx.At(j))
			}
		}
	}
	o.idx = hypercube.NewIndex(union)
	return nil
}

// At decomposes the position into (argument, local cell) and reads
// through.
func (o *Merge) At(i int) (float64, error) {
	if len(o.args) == 0 {
		return math.NaN(), nil
	}
	m := o.idx.At(i)
	return AtHC(o.args[m/o.sliceSize], m%o.sliceSize)
}

// Timestamp returns the newest argument timestamp.
func (o *Merge) Timestamp() Timestamp { return maxTimestamp(o.args) }
