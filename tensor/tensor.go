package tensor

import (
	"math"
	"strings"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
)

// Tensor is the abstract producer of scalar values indexed by a
// physical offset in [0, Size()). It carries the hypercube describing
// its axes, an optional sparse index, and a logical timestamp used by
// downstream caches.
//
// For a dense tensor the physical offset is the hypercube lineal
// index; for a sparse one it is the position within the index vector.
type Tensor interface {
	// Hypercube describes the axes, types and labels of this tensor.
	Hypercube() *hypercube.Hypercube

	// Index is the sparse index vector; empty means dense.
	Index() *hypercube.Index

	// Rank returns the number of axes.
	Rank() int

	// Shape returns the per-axis sizes.
	Shape() []int

	// Size returns the number of stored elements — the index size when
	// sparse, the hypercube element count when dense.
	Size() int

	// At returns or computes the value at physical offset i.
	At(i int) (float64, error)

	// Timestamp indicates how old the dependent data might be.
	Timestamp() Timestamp
}

// Args carries the operator configuration relevant for tensor
// expressions: a dimension name and a scalar, not always both
// meaningful.
type Args struct {
	Dimension string
	Val       float64
}

// Op is a configurable operator node. Every operator supports at least
// one of the argument-setting variants; the others return
// ErrNotImplemented.
type Op interface {
	Tensor
	SetArgument(arg Tensor, args Args) error
	SetArguments(a1, a2 Tensor, args Args) error
	SetArgumentList(list []Tensor, args Args) error
}

// base carries the hypercube and index common to every tensor node and
// supplies the not-implemented defaults of the Op configuration
// surface.
type base struct {
	hc  hypercube.Hypercube
	idx hypercube.Index
}

func (b *base) Hypercube() *hypercube.Hypercube { return &b.hc }
func (b *base) Index() *hypercube.Index         { return &b.idx }
func (b *base) Rank() int                       { return b.hc.Rank() }
func (b *base) Shape() []int                    { return b.hc.Dims() }

func (b *base) Size() int {
	if s := b.idx.Size(); s > 0 {
		return s
	}
	return b.hc.NumElements()
}

func (b *base) SetArgument(Tensor, Args) error          { return ErrNotImplemented }
func (b *base) SetArguments(Tensor, Tensor, Args) error { return ErrNotImplemented }
func (b *base) SetArgumentList([]Tensor, Args) error    { return ErrNotImplemented }

// AtHC returns the value at hypercube lineal position hcIdx, or NaN
// when the tensor holds nothing there — the dense/sparse dispatch
// every operator read path builds on.
func AtHC(t Tensor, hcIdx int) (float64, error) {
	idx := t.Index()
	if idx.Empty() {
		if hcIdx >= 0 && hcIdx < t.Size() {
			return t.At(hcIdx)
		}
	} else if i := idx.LinealOffset(hcIdx); i < idx.Size() {
		return t.At(i)
	}
	return math.NaN(), nil
}

// AtCoords returns the value at the given split index, one coordinate
// per axis.
func AtCoords(t Tensor, split ...int) (float64, error) {
	return AtHC(t, t.Hypercube().LinealIndex(split))
}

// Data materializes the stored values [0, Size()) into a fresh slice.
func Data(t Tensor) ([]float64, error) {
	out := make([]float64, t.Size())
	for i := range out {
		v, err := t.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FormatAtHC renders one cell with its coordinate labels, e.g.
// "[2020 apples ]=3.5", for diagnostics.
func FormatAtHC(t Tensor, hcIdx int) (string, error) {
	hc := t.Hypercube()
	split := hc.SplitIndex(hcIdx)
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range split {
		xv := &hc.XVectors[i]
		lbl, err := coord.Format(xv.Values[s], xv.Dimension.Units)
		if err != nil {
			return "", err
		}
		sb.WriteString(lbl)
		sb.WriteByte(' ')
	}
	v, err := AtHC(t, hcIdx)
	if err != nil {
		return "", err
	}
	sb.WriteString("]=")
	sb.WriteString(coord.Num(v).String())
	return sb.String(), nil
}

// scalarOrAt reads an operator argument at hypercube position hcIdx,
// broadcasting rank-0 arguments. A nil argument reads as NaN.
func scalarOrAt(t Tensor, hcIdx int) (float64, error) {
	if t == nil {
		return math.NaN(), nil
	}
	if t.Rank() == 0 {
		return t.At(0)
	}
	return AtHC(t, hcIdx)
}
