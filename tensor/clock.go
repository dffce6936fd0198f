package tensor

import "sync/atomic"

// Timestamp is a logical clock reading. It indicates how old a
// tensor's dependent data might be; cached operators compare it
// against their last materialization to decide staleness.
//
// The clock is a strictly increasing process-wide counter rather than
// a wall clock: two successive writes always get distinct readings, so
// the staleness relation stays exact even where the platform clock is
// coarse.
type Timestamp uint64

// Before reports whether t precedes o.
func (t Timestamp) Before(o Timestamp) bool { return t < o }

var logicalClock atomic.Uint64

// now returns the next clock reading.
func now() Timestamp { return Timestamp(logicalClock.Add(1)) }

// maxTimestamp returns the newest timestamp among args, or zero when
// args is empty.
func maxTimestamp(args []Tensor) Timestamp {
	var t Timestamp
	for _, a := range args {
		if a != nil && t.Before(a.Timestamp()) {
			t = a.Timestamp()
		}
	}
	return t
}
