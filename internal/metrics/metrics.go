// Package metrics holds minimal in-process counters for outbound order
// API traffic. Values are pull-only: callers read them with Load, nothing
// is pushed to a collector.
package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// RequestStats counts outbound order API calls by outcome.
type RequestStats struct {
	Attempts Counter
	Failures Counter
}

// Observe records one settled call.
func (s *RequestStats) Observe(err error) {
	s.Attempts.Inc()
	if err != nil {
		s.Failures.Inc()
	}
}
