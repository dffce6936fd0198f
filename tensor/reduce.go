package tensor

import (
	"math"

	"github.com/highperformancecoder/civita/hypercube"
)

// FoldFunc folds one value into an accumulator. The integer carries
// the value's position — the physical offset for whole-tensor folds,
// the coordinate along the reduced axis for per-axis reductions, and
// the hypercube lineal position for scans.
type FoldFunc func(acc *float64, x float64, i int)

// SumFold accumulates a plain sum.
func SumFold(acc *float64, x float64, _ int) { *acc += x }

// ReduceArguments folds a set of same-shaped tensors element-wise into
// one: op[i] = fold(init, x₀…xₙ) with rank-0 arguments broadcasting
// their scalar and NaN values skipped.
type ReduceArguments struct {
	base
	f    func(acc *float64, x float64)
	init float64
	args []Tensor
}

// NewReduceArguments returns an unconfigured fold with the given
// accumulator function and initial value.
func NewReduceArguments(f func(acc *float64, x float64), init float64) *ReduceArguments {
	return &ReduceArguments{f: f, init: init}
}

// SetArgumentList configures the argument set. All non-scalar
// arguments must share the first argument's hypercube, else ErrShape.
// The result index is the union of the arguments' indices.
func (o *ReduceArguments) SetArgumentList(a []Tensor, _ Args) error {
	o.hc = hypercube.Hypercube{}
	o.idx.Clear()
	if len(a) > 0 {
		hc := a[0].Hypercube().Clone()
		o.hc = hc
		var union []int
		for _, t := range a {
			if t.Rank() > 0 && hc.Rank() > 0 && !t.Hypercube().Equal(&hc) {
				return ErrShape
			}
			idx := t.Index()
			for i := 0; i < idx.Size(); i++ {
				union = append(union, idx.At(i))
			}
		}
		o.idx = hypercube.NewIndex(union)
	}
	o.args = a
	return nil
}

// At folds the argument values at this position, skipping NaNs.
func (o *ReduceArguments) At(i int) (float64, error) {
	if len(o.args) == 0 {
		return o.init, nil
	}
	r := o.init
	hcIdx := o.idx.At(i)
	for _, t := range o.args {
		x, err := scalarOrAt(t, hcIdx)
		if err != nil {
			return 0, err
		}
		if !math.IsNaN(x) {
			o.f(&r, x)
		}
	}
	return r, nil
}

// Timestamp returns the newest argument timestamp.
func (o *ReduceArguments) Timestamp() Timestamp { return maxTimestamp(o.args) }

// ReduceAll folds a single tensor's entire storage into a scalar,
// skipping NaNs. The fold function sees each value's physical offset.
type ReduceAll struct {
	base
	f    FoldFunc
	init float64
	arg  Tensor
}

// NewReduceAll returns an unconfigured whole-tensor fold.
func NewReduceAll(f FoldFunc, init float64) *ReduceAll {
	return &ReduceAll{f: f, init: init}
}

// SetArgument configures the argument; the result is rank 0.
func (o *ReduceAll) SetArgument(a Tensor, _ Args) error {
	o.arg = a
	return nil
}

// At scans the whole argument storage; the position argument is
// ignored, the scalar result is the same everywhere.
func (o *ReduceAll) At(int) (float64, error) {
	r := o.init
	if o.arg == nil {
		return r, nil
	}
	return r, o.foldAll(&r)
}

// foldAll accumulates every stored argument value into *r.
func (o *ReduceAll) foldAll(r *float64) error {
	for i := 0; i < o.arg.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		x, err := o.arg.At(i)
		if err != nil {
			return err
		}
		if !math.IsNaN(x) {
			o.f(r, x, i)
		}
	}
	return nil
}

// Timestamp returns the argument timestamp.
func (o *ReduceAll) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg})
}

// soi records one sparse argument entry contributing to a reduced
// output cell: its physical offset and its coordinate along the
// reduced axis.
type soi struct {
	off, dimIdx int
}

// Reduction folds a tensor along one named axis. An axis name that
// resolves to no axis degrades to a whole-tensor reduction yielding a
// scalar, as does a rank-0 argument.
//
// Dense arguments are reduced positionally with stride arithmetic; no
// index is built. Sparse arguments are walked once at configuration
// time into a map from reduced cell to contributing entries, and the
// result is sparse over that map's keys.
type Reduction struct {
	ReduceAll
	dim  int
	sums map[int][]soi
}

// NewReduction returns an unconfigured per-axis reduction.
func NewReduction(f FoldFunc, init float64) *Reduction {
	return &Reduction{ReduceAll: ReduceAll{f: f, init: init}}
}

// SetArgument configures the argument; args.Dimension names the axis
// to reduce along.
func (o *Reduction) SetArgument(a Tensor, args Args) error {
	o.arg = a
	o.dim = -1
	o.sums = nil
	o.idx.Clear()
	o.hc = hypercube.Hypercube{}
	if a == nil {
		return nil
	}
	ahc := a.Hypercube()
	o.hc = ahc.Clone()
	for i := range o.hc.XVectors {
		if o.hc.XVectors[i].Name == args.Dimension {
			o.dim = i
		}
	}
	if o.dim < 0 || o.dim >= a.Rank() {
		// reduce all, return scalar
		o.dim = -1
		o.hc.XVectors = nil
		return nil
	}
	o.hc.XVectors = append(o.hc.XVectors[:o.dim], o.hc.XVectors[o.dim+1:]...)
	if a.Index().Empty() {
		return nil
	}
	o.sums = make(map[int][]soi)
	aIdx := a.Index()
	for i := 0; i < a.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		split := ahc.SplitIndex(aIdx.At(i))
		entry := soi{off: i, dimIdx: split[o.dim]}
		split = append(split[:o.dim], split[o.dim+1:]...)
		l := o.hc.LinealIndex(split)
		o.sums[l] = append(o.sums[l], entry)
	}
	o.idx = hypercube.IndexFromMap(o.sums)
	return nil
}

// At folds the argument values over the reduced axis at this position,
// skipping NaNs.
func (o *Reduction) At(i int) (float64, error) {
	if o.arg == nil {
		return o.init, nil
	}
	if o.dim < 0 {
		return o.ReduceAll.At(i)
	}
	r := o.init
	if o.idx.Empty() {
		argDims := o.arg.Shape()
		stride := 1
		for j := 0; j < o.dim; j++ {
			stride *= argDims[j]
		}
		start := (i/stride)*stride*argDims[o.dim] + i%stride
		for j := 0; j < argDims[o.dim]; j++ {
			if err := checkCancel(); err != nil {
				return 0, err
			}
			x, err := AtHC(o.arg, j*stride+start)
			if err != nil {
				return 0, err
			}
			if !math.IsNaN(x) {
				o.f(&r, x, j)
			}
		}
		return r, nil
	}
	for _, e := range o.sums[o.idx.At(i)] {
		if err := checkCancel(); err != nil {
			return 0, err
		}
		x, err := o.arg.At(e.off)
		if err != nil {
			return 0, err
		}
		if !math.IsNaN(x) {
			o.f(&r, x, e.dimIdx)
		}
	}
	return r, nil
}
