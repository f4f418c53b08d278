// Package statistics provides synchronized thread-safe
// latency counters for benchmark rounds.
package statistics

import (
	"sync/atomic"
	"time"
)

// Sync counts operations and tracks their average and highest
// duration. The zero value is ready to use.
type Sync struct {
	operations      int64
	highestDuration int64
	averageDuration int64
}

func NewSync() *Sync {
	return &Sync{}
}

// Update records one operation taking d.
func (s *Sync) Update(d time.Duration) {
	n := atomic.AddInt64(&s.operations, 1)

	// Highest duration
	for {
		h := atomic.LoadInt64(&s.highestDuration)
		if int64(d) <= h ||
			atomic.CompareAndSwapInt64(&s.highestDuration, h, int64(d)) {
			break
		}
	}

	// Average duration
	curAvg := atomic.LoadInt64(&s.averageDuration)
	atomic.AddInt64(&s.averageDuration, (int64(d)-curAvg)/n)
}

func (s *Sync) GetOperations() int64 {
	return atomic.LoadInt64(&s.operations)
}

func (s *Sync) GetHighestDuration() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.highestDuration))
}

func (s *Sync) GetAverageDuration() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.averageDuration))
}
