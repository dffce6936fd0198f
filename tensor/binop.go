package tensor

import "github.com/highperformancecoder/civita/hypercube"

// BinOp applies a pure scalar function element-wise over two argument
// tensors. Rank-0 arguments broadcast their scalar; otherwise the
// argument shapes must agree.
type BinOp struct {
	base
	f          func(x, y float64) float64
	arg1, arg2 Tensor
}

// NewBinOp returns an unconfigured element-wise operator over f.
func NewBinOp(f func(x, y float64) float64) *BinOp {
	return &BinOp{f: f}
}

// SetArguments configures the two arguments.
//
// The result adopts the first non-scalar argument's hypercube; a
// second non-scalar argument must match its shape or ErrShape is
// returned. The result index starts from arg1's; a sparse arg2
// intersects it, except that the running set is never reduced to
// empty — an empty index would read as dense and force a useless full
// enumeration downstream, so the last element is kept alive instead.
func (o *BinOp) SetArguments(a1, a2 Tensor, _ Args) error {
	o.arg1, o.arg2 = a1, a2
	switch {
	case a1 != nil && a1.Rank() != 0:
		o.hc = a1.Hypercube().Clone()
		if a2 != nil && a2.Rank() != 0 && !a1.Hypercube().EqualDims(a2.Hypercube()) {
			return ErrShape
		}
	case a2 != nil:
		o.hc = a2.Hypercube().Clone()
	default:
		o.hc = hypercube.Hypercube{}
	}

	var merged []int
	if a1 != nil {
		idx := a1.Index()
		for i := 0; i < idx.Size(); i++ {
			merged = append(merged, idx.At(i))
		}
	}
	if a2 != nil && !a2.Index().Empty() {
		idx2 := a2.Index()
		if len(merged) == 0 {
			for i := 0; i < idx2.Size(); i++ {
				merged = append(merged, idx2.At(i))
			}
		} else {
			in2 := make(map[int]struct{}, idx2.Size())
			for i := 0; i < idx2.Size(); i++ {
				in2[idx2.At(i)] = struct{}{}
			}
			kept := merged[:0]
			for _, h := range merged {
				if err := checkCancel(); err != nil {
					return err
				}
				if _, ok := in2[h]; ok {
					kept = append(kept, h)
				}
			}
			if len(kept) == 0 {
				// keep the last survivor rather than shrinking to empty
				kept = append(kept, merged[len(merged)-1])
			}
			merged = kept
		}
	}
	o.idx = hypercube.NewIndex(merged)
	return nil
}

// At computes f over the argument values at this position,
// broadcasting scalars and reading absent sparse cells as NaN.
func (o *BinOp) At(i int) (float64, error) {
	hcIdx := o.idx.At(i)
	x, err := scalarOrAt(o.arg1, hcIdx)
	if err != nil {
		return 0, err
	}
	y, err := scalarOrAt(o.arg2, hcIdx)
	if err != nil {
		return 0, err
	}
	return o.f(x, y), nil
}

// Timestamp returns the newest argument timestamp.
func (o *BinOp) Timestamp() Timestamp {
	return maxTimestamp([]Tensor{o.arg1, o.arg2})
}
