package tensor

import "errors"

// Sentinel errors for tensor configuration and evaluation. Callers
// match them with errors.Is.
var (
	// ErrShape indicates argument hypercubes that are not conformal
	// where the operator requires it.
	ErrShape = errors.New("tensor: arguments not conformal")

	// ErrUnknownAxis indicates a named axis missing from a tensor.
	ErrUnknownAxis = errors.New("tensor: axis not found")

	// ErrTooLarge indicates a spread whose result would exceed the
	// addressable hypercube size.
	ErrTooLarge = errors.New("tensor: maximum hypercube size exceeded")

	// ErrOutOfMemory indicates the allocation accountant denied buffer
	// growth.
	ErrOutOfMemory = errors.New("tensor: out of memory")

	// ErrCancelled indicates cooperative cancellation was observed
	// mid-computation.
	ErrCancelled = errors.New("tensor: cancelled")

	// ErrNotImplemented indicates an argument-setting variant the
	// operator does not support.
	ErrNotImplemented = errors.New("tensor: setArgument variant not implemented")
)
