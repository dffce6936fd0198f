// Package hypercube defines the labeled shape of a tensor and its
// index algebra.
//
// An XVector is one axis: a name, a dimension descriptor and an
// ordered sequence of coordinate values. A Hypercube is an ordered
// list of XVectors; it converts between lineal indices (one integer in
// [0, NumElements)) and split indices (one coordinate per axis) using
// column-major unfolding — the first axis varies fastest — and merges
// with another hypercube by axis name via Union.
//
// An Index is the sparse companion: a sorted, duplicate-free set of
// lineal hypercube positions naming the cells a sparse tensor actually
// stores. An empty Index means dense; its accessor At degrades to the
// identity so dense and sparse code paths can share addressing logic.
//
// Invariants (checked in debug paths, assumed elsewhere):
//
//	LinealIndex(SplitIndex(h)) == h  for all h < NumElements
//	Index entries strictly ascending
//	every XVector entry's kind matches its dimension type once
//	ImposeDimension has been applied
package hypercube
