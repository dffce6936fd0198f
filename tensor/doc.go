// Package tensor implements the tensor evaluation graph: concrete
// value tensors, the family of lazy operator nodes over them, result
// caching, cooperative cancellation and the allocation accountant.
//
// A Tensor produces scalar float64 values indexed by a physical offset
// in [0, Size()), carries a hypercube describing its axes, an optional
// sparse index, and a logical timestamp consumed by downstream caches.
// Operator tensors hold references to their argument tensors, derive
// their own hypercube and index when configured, and compute each
// element on demand; nothing is materialized until a read forces it.
//
// Dense versus sparse is a per-operator pair of code paths selected by
// the argument's index: the dense path runs on stride arithmetic over
// lineal positions, the sparse path on projection maps built once at
// configuration time. An empty index always means dense.
//
// Caching: Scan (and any operator built on the caching base)
// materializes its result into an internal TensorVal and refreshes it
// only when an upstream timestamp moves past the last materialization.
// Timestamps come from a process-wide logical clock that advances on
// every value-tensor mutation.
//
// Concurrency: pure lazy operators are read-only after configuration
// and safe for concurrent reads over a shared argument DAG. Cached
// operators serialize materialization internally with a mutex, so
// concurrent first reads are safe. TensorVal mutation is not safe
// against concurrent reads of the same value; writers need external
// synchronization.
//
// Cancellation is process-wide: Cancel(true) makes every long-running
// loop in every in-flight computation return ErrCancelled at its next
// polling point. Reset with Cancel(false).
//
// Errors:
//
//	ErrShape          - argument hypercubes not conformal
//	ErrUnknownAxis    - named axis missing from a tensor
//	ErrTooLarge       - spread exceeds the addressable hypercube size
//	ErrOutOfMemory    - allocation accountant denied growth
//	ErrCancelled      - cooperative cancellation observed
//	ErrNotImplemented - unsupported argument-setting variant
package tensor
