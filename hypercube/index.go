package hypercube

import "sort"

// Index is the sparse-tensor index concept: a sorted, duplicate-free
// sequence of lineal hypercube positions naming the cells actually
// stored. The zero Index is empty, which marks a dense tensor.
type Index struct {
	idx []int // sorted, strictly ascending
}

// NewIndex builds an index from arbitrary positions, sorting and
// de-duplicating them.
// Complexity: O(n log n).
func NewIndex(positions []int) Index {
	if len(positions) == 0 {
		return Index{}
	}
	s := append([]int(nil), positions...)
	sort.Ints(s)
	out := s[:1]
	for _, p := range s[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return Index{idx: out}
}

// IndexFromMap builds an index from the keys of a position-keyed map.
func IndexFromMap[V any](m map[int]V) Index {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return fromSorted(keys)
}

// fromSorted adopts an already strictly-ascending slice. The invariant
// is the caller's to uphold; it is checked here because a violated
// index silently corrupts every sparse lookup downstream.
func fromSorted(sorted []int) Index {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] <= sorted[i-1] {
			panic("hypercube: index positions not strictly ascending")
		}
	}
	return Index{idx: sorted}
}

// At returns the hypercube lineal position stored at physical offset
// i. An empty index is the dense marker: At degrades to the identity.
func (ix *Index) At(i int) int {
	if len(ix.idx) == 0 {
		return i
	}
	return ix.idx[i]
}

// LinealOffset returns the physical offset of hypercube position h, or
// Size() when h is not present.
// Complexity: O(log n).
func (ix *Index) LinealOffset(h int) int {
	i := sort.SearchInts(ix.idx, h)
	if i < len(ix.idx) && ix.idx[i] == h {
		return i
	}
	return len(ix.idx)
}

// Contains reports whether hypercube position h is stored.
func (ix *Index) Contains(h int) bool {
	return ix.LinealOffset(h) < len(ix.idx)
}

// Empty reports whether the index is empty (the dense marker).
func (ix *Index) Empty() bool { return len(ix.idx) == 0 }

// Size returns the number of stored positions.
func (ix *Index) Size() int { return len(ix.idx) }

// Clear empties the index, marking the tensor dense.
func (ix *Index) Clear() { ix.idx = nil }

// Clone returns a copy sharing no storage.
func (ix *Index) Clone() Index {
	return Index{idx: append([]int(nil), ix.idx...)}
}

// Sorted reports whether the invariant holds; intended for tests and
// debug checks.
func (ix *Index) Sorted() bool {
	for i := 1; i < len(ix.idx); i++ {
		if ix.idx[i] <= ix.idx[i-1] {
			return false
		}
	}
	return true
}
