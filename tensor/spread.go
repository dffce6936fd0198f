package tensor

import (
	"math"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
)

// maxLogElements bounds a spread result to the addressable hypercube
// size: ln(2⁶⁴).
var maxLogElements = 64 * math.Ln2

// SpreadFirst replicates a tensor over extra axes prepended before its
// own: the output holds one copy of the argument per cell of the
// spread hypercube, the spread coordinates varying fastest.
type SpreadFirst struct {
	base
	arg       Tensor
	numSpread int // elements of the spread hypercube
}

// NewSpreadFirst returns an unconfigured spread.
func NewSpreadFirst() *SpreadFirst { return &SpreadFirst{} }

// SetArgument adopts the argument unchanged; SetSpreadDimensions then
// prepends the spread axes.
func (o *SpreadFirst) SetArgument(a Tensor, _ Args) error {
	o.arg = a
	o.hc = a.Hypercube().Clone()
	o.idx = a.Index().Clone()
	o.numSpread = 1
	return nil
}

// SetSpreadDimensions prepends spread's axes to the argument's. For a
// sparse argument the result index replicates the argument's entries
// across every spread cell, or across just the cells of the optional
// restriction index. Fails with ErrTooLarge when the result would
// exceed the addressable hypercube size.
func (o *SpreadFirst) SetSpreadDimensions(spread hypercube.Hypercube, restrict ...hypercube.Index) error {
	if o.arg == nil {
		return nil
	}
	if spread.LogNumElements()+o.hc.LogNumElements() > maxLogElements {
		return ErrTooLarge
	}
	hc := spread.Clone()
	hc.XVectors = append(hc.XVectors, o.arg.Hypercube().Clone().XVectors...)
	o.hc = hc
	o.numSpread = spread.NumElements()
	if spread.Rank() > 0 {
		o.idx.Clear()
	}
	return o.setIndex(restrict)
}

// setIndex builds the sparse result index when the argument is
// sparse.
func (o *SpreadFirst) setIndex(restrict []hypercube.Index) error {
	aIdx := o.arg.Index()
	if aIdx.Empty() {
		return nil
	}
	if o.numSpread == 1 {
		o.idx = aIdx.Clone()
		return nil
	}
	spreadAt, spreadN := spreadPositions(restrict, o.numSpread)
	var out []int
	for i := 0; i < aIdx.Size(); i++ {
		for j := 0; j < spreadN; j++ {
			if err := checkCancel(); err != nil {
				return err
			}
			out = append(out, spreadAt(j)+aIdx.At(i)*o.numSpread)
		}
	}
	o.idx = hypercube.NewIndex(out)
	return nil
}

// At strips the spread coordinates and reads through to the argument.
func (o *SpreadFirst) At(i int) (float64, error) {
	return AtHC(o.arg, o.idx.At(i)/o.numSpread)
}

// Timestamp returns the argument timestamp.
func (o *SpreadFirst) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}

// SpreadLast replicates a tensor over extra axes appended after its
// own: the output holds the whole argument once per spread cell, the
// argument coordinates varying fastest.
type SpreadLast struct {
	base
	arg       Tensor
	numSpread int // elements of the argument hypercube
}

// NewSpreadLast returns an unconfigured spread.
func NewSpreadLast() *SpreadLast { return &SpreadLast{} }

// SetArgument adopts the argument unchanged; SetSpreadDimensions then
// appends the spread axes.
func (o *SpreadLast) SetArgument(a Tensor, _ Args) error {
	o.arg = a
	o.hc = a.Hypercube().Clone()
	o.idx = a.Index().Clone()
	o.numSpread = 1
	return nil
}

// SetSpreadDimensions appends spread's axes to the argument's. For a
// sparse argument the result index repeats the argument's entries once
// per spread cell (or per cell of the optional restriction index).
// Fails with ErrTooLarge when the result would exceed the addressable
// hypercube size.
func (o *SpreadLast) SetSpreadDimensions(spread hypercube.Hypercube, restrict ...hypercube.Index) error {
	if o.arg == nil {
		return nil
	}
	if spread.LogNumElements()+o.hc.LogNumElements() > maxLogElements {
		return ErrTooLarge
	}
	hc := o.arg.Hypercube().Clone()
	hc.XVectors = append(hc.XVectors, spread.Clone().XVectors...)
	o.hc = hc
	o.numSpread = o.arg.Hypercube().NumElements()
	if spread.Rank() > 0 {
		o.idx.Clear()
	}
	return o.setIndex(restrict)
}

// setIndex builds the sparse result index when the argument is
// sparse.
func (o *SpreadLast) setIndex(restrict []hypercube.Index) error {
	aIdx := o.arg.Index()
	if aIdx.Empty() {
		return nil
	}
	numToSpread := 1
	for i := o.arg.Rank(); i < o.hc.Rank(); i++ {
		numToSpread *= o.hc.XVectors[i].Size()
	}
	if numToSpread == 1 {
		o.idx = aIdx.Clone()
		return nil
	}
	spreadAt, spreadN := spreadPositions(restrict, numToSpread)
	var out []int
	for i := 0; i < spreadN; i++ {
		for j := 0; j < aIdx.Size(); j++ {
			if err := checkCancel(); err != nil {
				return err
			}
			out = append(out, aIdx.At(j)+spreadAt(i)*o.numSpread)
		}
	}
	o.idx = hypercube.NewIndex(out)
	return nil
}

// At strips the spread coordinates and reads through to the argument.
func (o *SpreadLast) At(i int) (float64, error) {
	return AtHC(o.arg, o.idx.At(i)%o.numSpread)
}

// Timestamp returns the argument timestamp.
func (o *SpreadLast) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}

// spreadPositions resolves the optional restriction index into an
// accessor over the spread cells to replicate across.
func spreadPositions(restrict []hypercube.Index, full int) (at func(int) int, n int) {
	if len(restrict) > 0 && !restrict[0].Empty() {
		r := restrict[0]
		return r.At, r.Size()
	}
	return func(i int) int { return i }, full
}

// SpreadOverHC maps a tensor onto a target hypercube with the same
// axes but possibly more coordinate labels per axis. Target cells
// whose coordinates have no pre-image in the argument read as NaN.
type SpreadOverHC struct {
	base
	arg   Tensor
	perms [][]int // per axis: target coordinate → source coordinate or -1
}

// NewSpreadOverHC returns a spread onto the given target hypercube.
func NewSpreadOverHC(target hypercube.Hypercube) *SpreadOverHC {
	o := &SpreadOverHC{}
	o.hc = target
	return o
}

// SetArgument adopts the argument, which must carry the target's axes
// (same names and dimension types) else ErrShape, and builds the
// per-axis coordinate permutation tables.
func (o *SpreadOverHC) SetArgument(a Tensor, _ Args) error {
	if a.Rank() != o.Rank() {
		return ErrShape
	}
	ahc := a.Hypercube()
	for i := range ahc.XVectors {
		if ahc.XVectors[i].Name != o.hc.XVectors[i].Name ||
			ahc.XVectors[i].Dimension.Type != o.hc.XVectors[i].Dimension.Type {
			return ErrShape
		}
	}
	o.arg = a
	o.perms = make([][]int, a.Rank())
	for i := range ahc.XVectors {
		src := make(map[coord.Value]int, ahc.XVectors[i].Size())
		for j, v := range ahc.XVectors[i].Values {
			if err := checkCancel(); err != nil {
				return err
			}
			src[v] = j
		}
		for _, v := range o.hc.XVectors[i].Values {
			if err := checkCancel(); err != nil {
				return err
			}
			if j, ok := src[v]; ok {
				o.perms[i] = append(o.perms[i], j)
			} else {
				o.perms[i] = append(o.perms[i], -1)
			}
		}
	}
	return nil
}

// At maps the target coordinates back to the argument, NaN where a
// coordinate has no pre-image.
func (o *SpreadOverHC) At(i int) (float64, error) {
	split := o.hc.SplitIndex(o.idx.At(i))
	ahc := o.arg.Hypercube()
	for k := range split {
		if err := checkCancel(); err != nil {
			return 0, err
		}
		p := o.perms[k][split[k]]
		if p < 0 || p >= ahc.XVectors[k].Size() {
			return math.NaN(), nil
		}
		split[k] = p
	}
	return AtHC(o.arg, ahc.LinealIndex(split))
}

// Timestamp returns the argument timestamp.
func (o *SpreadOverHC) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}
