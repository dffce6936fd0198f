package hypercube

import (
	"math"
	"strconv"

	"github.com/highperformancecoder/civita/coord"
)

// Hypercube is the labeled shape of a tensor: an ordered list of named
// axes. Lineal encoding is column-major — the first axis varies
// fastest.
type Hypercube struct {
	XVectors []XVector
}

// New builds a hypercube of synthetic numeric axes named "0","1",…
// with coordinates 0..d−1 along each.
// Complexity: O(Σ dims).
func New(dims ...int) Hypercube {
	var h Hypercube
	h.SetDims(dims...)
	return h
}

// FromXVectors builds a hypercube over the given axes.
func FromXVectors(xv ...XVector) Hypercube {
	return Hypercube{XVectors: xv}
}

// SetDims replaces the axes with synthetic numeric ones, as New.
func (h *Hypercube) SetDims(dims ...int) {
	h.XVectors = h.XVectors[:0]
	for i, d := range dims {
		xv := XVector{Name: strconv.Itoa(i), Dimension: coord.Dimension{Type: coord.KindValue}}
		for j := 0; j < d; j++ {
			xv.Values = append(xv.Values, coord.Num(float64(j)))
		}
		h.XVectors = append(h.XVectors, xv)
	}
}

// Rank returns the number of axes.
func (h *Hypercube) Rank() int { return len(h.XVectors) }

// Dims returns the per-axis sizes in declaration order.
func (h *Hypercube) Dims() []int {
	d := make([]int, len(h.XVectors))
	for i := range h.XVectors {
		d[i] = h.XVectors[i].Size()
	}
	return d
}

// DimLabels returns the axis names in declaration order.
func (h *Hypercube) DimLabels() []string {
	l := make([]string, len(h.XVectors))
	for i := range h.XVectors {
		l[i] = h.XVectors[i].Name
	}
	return l
}

// NumElements returns the total cell count, the product of the axis
// sizes. The empty hypercube has one element (the scalar).
func (h *Hypercube) NumElements() int {
	n := 1
	for i := range h.XVectors {
		n *= h.XVectors[i].Size()
	}
	return n
}

// LogNumElements returns the natural log of the cell count, usable for
// overflow checks before NumElements itself is computed.
func (h *Hypercube) LogNumElements() float64 {
	r := 0.0
	for i := range h.XVectors {
		r += math.Log(float64(h.XVectors[i].Size()))
	}
	return r
}

// DimsAreDistinct reports whether all axis names are unique.
func (h *Hypercube) DimsAreDistinct() bool {
	seen := make(map[string]struct{}, len(h.XVectors))
	for i := range h.XVectors {
		if _, dup := seen[h.XVectors[i].Name]; dup {
			return false
		}
		seen[h.XVectors[i].Name] = struct{}{}
	}
	return true
}

// SplitIndex decomposes a lineal index into one coordinate per axis by
// repeated division in declaration order.
// Complexity: O(rank).
func (h *Hypercube) SplitIndex(i int) []int {
	split := make([]int, 0, len(h.XVectors))
	for k := range h.XVectors {
		n := h.XVectors[k].Size()
		split = append(split, i%n)
		i /= n
	}
	return split
}

// LinealIndex recomposes a split index into its lineal form, the
// inverse of SplitIndex. The caller guarantees split[i] < Dims()[i].
// Complexity: O(rank).
func (h *Hypercube) LinealIndex(split []int) int {
	idx, stride := 0, 1
	for k := range h.XVectors {
		idx += split[k] * stride
		stride *= h.XVectors[k].Size()
	}
	return idx
}

// Clone returns a deep copy of the hypercube.
func (h *Hypercube) Clone() Hypercube {
	c := Hypercube{XVectors: make([]XVector, len(h.XVectors))}
	for i := range h.XVectors {
		c.XVectors[i] = h.XVectors[i].Clone()
	}
	return c
}

// Equal reports whether two hypercubes agree on axis names, dimensions
// and every coordinate value.
func (h *Hypercube) Equal(o *Hypercube) bool {
	if len(h.XVectors) != len(o.XVectors) {
		return false
	}
	for i := range h.XVectors {
		a, b := &h.XVectors[i], &o.XVectors[i]
		if a.Name != b.Name || a.Dimension != b.Dimension || len(a.Values) != len(b.Values) {
			return false
		}
		for j := range a.Values {
			if !a.Values[j].Equal(b.Values[j]) {
				return false
			}
		}
	}
	return true
}

// EqualDims reports whether two hypercubes have the same shape,
// ignoring labels.
func (h *Hypercube) EqualDims(o *Hypercube) bool {
	if len(h.XVectors) != len(o.XVectors) {
		return false
	}
	for i := range h.XVectors {
		if h.XVectors[i].Size() != o.XVectors[i].Size() {
			return false
		}
	}
	return true
}
