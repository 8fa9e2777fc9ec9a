package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	t.Run("Inc and Add accumulate", func(t *testing.T) {
		var c Counter

		c.Inc()
		c.Add(4)

		assert.Equal(t, uint64(5), c.Load())
	})

	t.Run("Concurrent increments are not lost", func(t *testing.T) {
		var c Counter
		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.Inc()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, uint64(5000), c.Load())
	})
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)

	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}

func TestRequestStats_Observe(t *testing.T) {
	var stats RequestStats

	stats.Observe(nil)
	stats.Observe(errors.New("boom"))
	stats.Observe(nil)

	assert.Equal(t, uint64(3), stats.Attempts.Load())
	assert.Equal(t, uint64(1), stats.Failures.Load())
}
