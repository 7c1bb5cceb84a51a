package sampler

import "time"

// Clock provides monotonic time in seconds since an arbitrary base.
// Capture timestamps and aggregation latencies both come from the same
// clock, so latencies are non-negative by construction.
type Clock interface {
	Now() float64
}

type monotonicClock struct {
	base time.Time
}

// NewClock returns a monotonic clock anchored at the moment of creation.
func NewClock() Clock {
	return &monotonicClock{base: time.Now()}
}

func (c *monotonicClock) Now() float64 {
	return time.Since(c.base).Seconds()
}
