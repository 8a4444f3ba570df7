package memory

import "sync/atomic"

// Counter is a monotonic id generator. It is independent of how many items a
// repository holds, so ids are never reused.
type Counter struct {
	last atomic.Int64
}

// NewCounter returns a counter whose first id is start+1.
func NewCounter(start int) *Counter {
	c := &Counter{}
	c.last.Store(int64(start))
	return c
}

// NextID returns the next id.
func (c *Counter) NextID() int {
	return int(c.last.Add(1))
}
