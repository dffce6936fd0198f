package tensor

import (
	"fmt"
	"math"
	"strings"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
)

// TensorVal is a tensor variable: values stored in contiguous memory,
// dense or sparse. With an empty index the buffer holds one value per
// hypercube cell; with a sparse index it holds one value per index
// entry. Every write and every shape or index change advances the
// timestamp, which is what downstream caches key on.
//
// Mutation is not safe against concurrent reads of the same value;
// writers need external synchronization.
type TensorVal struct {
	base
	data []float64
	ts   Timestamp
}

// NewTensorVal allocates a dense value tensor over hc, NaN-filled.
// Fails with ErrOutOfMemory when the allocation accountant denies the
// buffer.
func NewTensorVal(hc hypercube.Hypercube) (*TensorVal, error) {
	t := &TensorVal{}
	t.hc = hc
	if err := t.alloc(); err != nil {
		return nil, err
	}
	t.touch()
	return t, nil
}

// NewTensorValDims allocates a dense value tensor over synthetic
// numeric axes of the given sizes.
func NewTensorValDims(dims ...int) (*TensorVal, error) {
	return NewTensorVal(hypercube.New(dims...))
}

// NewScalar returns a rank-0 tensor holding x.
func NewScalar(x float64) *TensorVal {
	t := &TensorVal{data: []float64{x}}
	t.touch()
	return t
}

// alloc replaces the buffer by a NaN-filled one of the current Size(),
// with the byte delta passed through the allocation accountant.
func (t *TensorVal) alloc() error {
	n := t.Size()
	if err := trackAllocation(int64(n-len(t.data)) * 8); err != nil {
		return err
	}
	t.data = make([]float64, n)
	for i := range t.data {
		t.data[i] = math.NaN()
	}
	return nil
}

func (t *TensorVal) touch() { t.ts = now() }

// Timestamp returns the time of the last mutation.
func (t *TensorVal) Timestamp() Timestamp { return t.ts }

// At returns the stored value at physical offset i.
func (t *TensorVal) At(i int) (float64, error) {
	if len(t.data) == 0 {
		return 0, nil
	}
	return t.data[i], nil
}

// Set writes the value at physical offset i and stamps the tensor.
func (t *TensorVal) Set(i int, v float64) {
	t.data[i] = v
	t.touch()
}

// SetHypercube replaces the axes and reallocates storage to match.
func (t *TensorVal) SetHypercube(hc hypercube.Hypercube) error {
	t.hc = hc
	if err := t.alloc(); err != nil {
		return err
	}
	t.touch()
	return nil
}

// SetDims replaces the axes with synthetic numeric ones.
func (t *TensorVal) SetDims(dims ...int) error {
	return t.SetHypercube(hypercube.New(dims...))
}

// SetIndex makes the tensor sparse over the given index (or dense when
// the index is empty) and reallocates storage to match.
func (t *TensorVal) SetIndex(idx hypercube.Index) error {
	t.idx = idx
	if err := t.alloc(); err != nil {
		return err
	}
	t.touch()
	return nil
}

// AssignMap assigns a sparse data set: the keys become the index, the
// values the storage, in key order.
func (t *TensorVal) AssignMap(m map[int]float64) error {
	idx := hypercube.IndexFromMap(m)
	if err := trackAllocation(int64(idx.Size()-len(t.data)) * 8); err != nil {
		return err
	}
	data := make([]float64, 0, idx.Size())
	for i := 0; i < idx.Size(); i++ {
		data = append(data, m[idx.At(i)])
	}
	t.idx, t.data = idx, data
	t.touch()
	return nil
}

// Assign sets the hypercube and assigns a position-keyed data set,
// choosing sparse storage when the data covers less than half the
// hypercube and dense storage (absent cells NaN) otherwise.
func (t *TensorVal) Assign(hc hypercube.Hypercube, m map[int]float64) error {
	t.hc = hc
	if 2*len(m) < hc.NumElements() {
		return t.AssignMap(m)
	}
	t.idx.Clear()
	if err := t.alloc(); err != nil {
		return err
	}
	for i := range t.data {
		t.data[i] = math.NaN()
	}
	for k, v := range m {
		t.data[k] = v
	}
	t.touch()
	return nil
}

// AssignSlice assigns a dense data set, trimmed or NaN-padded to the
// hypercube's element count.
func (t *TensorVal) AssignSlice(vals []float64) error {
	t.idx.Clear()
	ne := t.hc.NumElements()
	if err := trackAllocation(int64(ne-len(t.data)) * 8); err != nil {
		return err
	}
	data := make([]float64, ne)
	n := copy(data, vals)
	for i := n; i < ne; i++ {
		data[i] = math.NaN()
	}
	t.data = data
	t.touch()
	return nil
}

// AssignTensor materializes another tensor: shape, index and values.
func (t *TensorVal) AssignTensor(src Tensor) error {
	if err := t.SetIndex(src.Index().Clone()); err != nil {
		return err
	}
	if err := t.SetHypercube(src.Hypercube().Clone()); err != nil {
		return err
	}
	for i := 0; i < src.Size(); i++ {
		if err := checkCancel(); err != nil {
			return err
		}
		v, err := src.At(i)
		if err != nil {
			return err
		}
		t.data[i] = v
	}
	t.touch()
	return nil
}

// Clone returns an independent copy of the tensor.
func (t *TensorVal) Clone() (*TensorVal, error) {
	c := &TensorVal{}
	c.hc = t.hc.Clone()
	c.idx = t.idx.Clone()
	if err := trackAllocation(int64(len(t.data)) * 8); err != nil {
		return nil, err
	}
	c.data = append([]float64(nil), t.data...)
	c.touch()
	return c, nil
}

// ImposeDimensions applies the dimension descriptors in dims to the
// axes that name them, re-parsing coordinate labels where the kind
// changes. Values are preserved; only axis metadata moves.
func (t *TensorVal) ImposeDimensions(dims coord.Dimensions) error {
	for i := range t.hc.XVectors {
		xv := &t.hc.XVectors[i]
		if dim, ok := dims[xv.Name]; ok {
			xv.Dimension = dim
			if err := xv.ImposeDimension(); err != nil {
				return err
			}
		}
	}
	t.touch()
	return nil
}

// Scale returns a copy of x with every stored value multiplied by a.
func Scale(a float64, x *TensorVal) (*TensorVal, error) {
	r, err := x.Clone()
	if err != nil {
		return nil, err
	}
	for i := range r.data {
		r.data[i] *= a
	}
	r.touch()
	return r, nil
}

// String summarizes the axes: name, size, kind and units of each.
func (t *TensorVal) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range t.hc.XVectors {
		xv := &t.hc.XVectors[i]
		fmt.Fprintf(&sb, "{%s(%d):%s %s},", xv.Name, xv.Size(), xv.Dimension.Type, xv.Dimension.Units)
	}
	sb.WriteByte(']')
	return sb.String()
}
