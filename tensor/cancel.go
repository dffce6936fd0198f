package tensor

import "sync/atomic"

// cancelRequested is the process-wide cancellation flag. Setting it
// affects all in-flight computations in all goroutines.
var cancelRequested atomic.Bool

// Cancel requests or resets cooperative cancellation. With v true,
// every long-running tensor computation returns ErrCancelled at its
// next polling point; the flag stays set until explicitly reset with
// Cancel(false).
func Cancel(v bool) { cancelRequested.Store(v) }

// checkCancel is the polling point woven into every O(n) loop.
func checkCancel() error {
	if cancelRequested.Load() {
		return ErrCancelled
	}
	return nil
}
