package tensor

import (
	"sync"

	"github.com/highperformancecoder/civita/hypercube"
)

// cachedOp is the base of operators that materialize their result into
// an internal TensorVal rather than computing element reads on the
// fly. A read compares the last materialization against the upstream
// timestamp and recomputes only when an input has changed since.
//
// Materialization is serialized by an internal mutex, so concurrent
// first readers of the same node are safe.
//
// The embedding operator assigns compute and upstream during
// construction and sets cachedResult's hypercube in its configuration
// step, so the shape and size are known without forcing a compute.
type cachedOp struct {
	mu           sync.Mutex
	cachedResult TensorVal
	lastComputed Timestamp
	compute      func() error
	upstream     func() Timestamp
}

// refresh recomputes the cached result if an input changed since the
// last materialization.
func (c *cachedOp) refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastComputed.Before(c.upstream()) {
		if err := c.compute(); err != nil {
			return err
		}
		c.lastComputed = now()
	}
	return nil
}

// At refreshes the cache if stale and reads the materialized value.
func (c *cachedOp) At(i int) (float64, error) {
	if err := c.refresh(); err != nil {
		return 0, err
	}
	return c.cachedResult.At(i)
}

// Hypercube returns the cached result's hypercube. The configuration
// step fixes it, so no compute is forced here.
func (c *cachedOp) Hypercube() *hypercube.Hypercube { return c.cachedResult.Hypercube() }

// Index returns the cached result's index.
func (c *cachedOp) Index() *hypercube.Index { return c.cachedResult.Index() }

// Rank returns the cached result's rank.
func (c *cachedOp) Rank() int { return c.cachedResult.Rank() }

// Shape returns the cached result's per-axis sizes.
func (c *cachedOp) Shape() []int { return c.cachedResult.Shape() }

// Size returns the cached result's element count.
func (c *cachedOp) Size() int { return c.cachedResult.Size() }

// Timestamp returns the upstream timestamp, so stacked caches
// invalidate transitively.
func (c *cachedOp) Timestamp() Timestamp { return c.upstream() }

func (c *cachedOp) SetArgument(Tensor, Args) error          { return ErrNotImplemented }
func (c *cachedOp) SetArguments(Tensor, Tensor, Args) error { return ErrNotImplemented }
func (c *cachedOp) SetArgumentList([]Tensor, Args) error    { return ErrNotImplemented }
