// Package civita is a labeled, possibly-sparse, N-dimensional tensor
// algebra library for modelling and spreadsheet-like applications.
//
// Tensors carry axis metadata — named dimensions with typed coordinate
// labels (strings, timestamps or numeric values) — support dense and
// sparse storage, and expose a composable family of lazy operator nodes
// whose results are views computed on demand.
//
// Everything is organized under three subpackages:
//
//	coord/     — coordinate values, dimension descriptors, label parsing
//	             and formatting, unit conversions
//	hypercube/ — named axis vectors, hypercube shape & index algebra,
//	             sparse index vectors
//	tensor/    — the Tensor interface, concrete value tensors, the lazy
//	             operator family (element-wise ops, reductions, scans,
//	             slices, pivots, spreads, meld & merge), result caching,
//	             cooperative cancellation and the allocation accountant
//
// Clients build a DAG of operator tensors over one or more value-tensor
// leaves. Any read on a root walks the DAG; cached nodes materialize at
// most once per upstream change, tracked through logical timestamps.
//
// Lineal indexing is column-major throughout: the first axis varies
// fastest. A sparse tensor stores only the cells named by its sorted
// index vector; every absent cell reads as NaN. NaN is data, not an
// error — folds skip it, melds fall through it.
//
// Quick example:
//
//	hc := hypercube.New(5, 3, 2)
//	tv, _ := tensor.NewTensorVal(hc)
//	for i := 0; i < tv.Size(); i++ {
//		tv.Set(i, float64(i))
//	}
//	sum := tensor.NewReduction(tensor.SumFold, 0)
//	_ = sum.SetArgument(tv, tensor.Args{Dimension: "0"})
//	v, _ := sum.At(0) // 0+1+2+3+4
package civita
