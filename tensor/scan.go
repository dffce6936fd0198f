package tensor

import (
	"math"

	"github.com/highperformancecoder/civita/hypercube"
)

// Scan accumulates along one named axis: each output cell is the fold
// of its fiber up to and including its own position. An optional
// window width restricts the fold to the trailing w positions; a
// window below 1 or covering the whole axis degrades to the full
// prefix scan. An axis name that resolves to no axis scans every cell
// of the hypercube in lineal order.
//
// Scan is cached: the result materializes once per upstream change.
type Scan struct {
	cachedOp
	f      FoldFunc
	arg    Tensor
	dim    int
	window float64
}

// NewScan returns an unconfigured scan over f.
func NewScan(f FoldFunc) *Scan {
	s := &Scan{f: f, dim: -1}
	s.compute = s.computeTensor
	s.upstream = func() Timestamp {
		return maxTimestamp([]Tensor{s.arg})
	}
	return s
}

// SetArgument configures the argument; args.Dimension names the scan
// axis and args.Val, when ≥1, the window width. The cached result's
// shape is fixed here, so size queries never force a compute.
func (s *Scan) SetArgument(a Tensor, args Args) error {
	s.arg = a
	s.window = args.Val
	s.dim = -1
	s.lastComputed = 0
	if a == nil {
		return s.cachedResult.SetHypercube(hypercube.Hypercube{})
	}
	hc := a.Hypercube().Clone()
	for i := range hc.XVectors {
		if hc.XVectors[i].Name == args.Dimension {
			s.dim = i
		}
	}
	return s.cachedResult.SetHypercube(hc)
}

// computeTensor materializes the scan into the cached result.
func (s *Scan) computeTensor() error {
	if s.arg == nil {
		return nil
	}
	cr := &s.cachedResult
	n := cr.Hypercube().NumElements()
	if n == 0 {
		return nil
	}
	if s.dim >= 0 && s.dim < s.arg.Rank() {
		argDims := s.arg.Hypercube().Dims()
		stride := 1
		for j := 0; j < s.dim; j++ {
			stride *= argDims[j]
		}
		span := argDims[s.dim]
		if s.window >= 1 && s.window < float64(span) {
			if err := s.windowedScan(stride, span, n); err != nil {
				return err
			}
		} else if err := s.fullScan(stride, span, n); err != nil {
			return err
		}
	} else {
		// no axis resolved: prefix scan over the whole storage
		seed, err := AtHC(s.arg, 0)
		if err != nil {
			return err
		}
		cr.data[0] = seed
		for i := 1; i < n; i++ {
			if err := checkCancel(); err != nil {
				return err
			}
			x, err := AtHC(s.arg, i)
			if err != nil {
				return err
			}
			cr.data[i] = cr.data[i-1]
			if !math.IsNaN(x) {
				s.f(&cr.data[i], x, i)
			}
		}
	}
	cr.touch()
	return nil
}

// fullScan writes a prefix accumulation along every fiber of the scan
// axis.
func (s *Scan) fullScan(stride, span, n int) error {
	cr := &s.cachedResult
	for i := 0; i < n; i += stride * span {
		for j := 0; j < stride; j++ {
			seed, err := AtHC(s.arg, i+j)
			if err != nil {
				return err
			}
			cr.data[i+j] = seed
			for k := i + j + stride; k < i+j+stride*span; k += stride {
				if err := checkCancel(); err != nil {
					return err
				}
				x, err := AtHC(s.arg, k)
				if err != nil {
					return err
				}
				cr.data[k] = cr.data[k-stride]
				if !math.IsNaN(x) {
					s.f(&cr.data[k], x, k)
				}
			}
		}
	}
	return nil
}

// windowedScan folds, for each position, the trailing window of its
// fiber.
func (s *Scan) windowedScan(stride, span, n int) error {
	cr := &s.cachedResult
	w := int(s.window)
	for i := 0; i < n; i += stride * span {
		for j := 0; j < stride; j++ {
			for j1 := 0; j1 < span*stride; j1 += stride {
				k := i + j
				if back := j1 - (w-1)*stride; back > 0 {
					k += back
				}
				seed, err := AtHC(s.arg, i+j+j1)
				if err != nil {
					return err
				}
				cr.data[i+j+j1] = seed
				for ; k < i+j+j1; k += stride {
					if err := checkCancel(); err != nil {
						return err
					}
					x, err := AtHC(s.arg, k)
					if err != nil {
						return err
					}
					if !math.IsNaN(x) {
						s.f(&cr.data[i+j+j1], x, k)
					}
				}
			}
		}
	}
	return nil
}
