package coord

import "errors"

// Sentinel errors for the coordinate layer. Callers match them with
// errors.Is; wrapping adds context without hiding the sentinel.
var (
	// ErrBadValue indicates a label that cannot be parsed under its
	// dimension: a malformed number, an out-of-range quarter, a format
	// string lacking a year field when %Q is present, or an unparseable
	// timestamp.
	ErrBadValue = errors.New("coord: bad value")

	// ErrInconvertibleUnits indicates a unit conversion between units
	// with no registered relation.
	ErrInconvertibleUnits = errors.New("coord: inconvertible units")

	// ErrKindMismatch indicates an operation that requires two values of
	// the same kind received values of different kinds.
	ErrKindMismatch = errors.New("coord: value kinds differ")
)
