package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSieve is called after each bounded sieve request.
	// limit is the requested bound, primes the number produced,
	// duration the total time taken; err is nil if successful.
	RecordSieve(limit uint64, primes int, duration time.Duration, err error)

	// RecordSegment is called after each segment is sieved.
	// May be called concurrently from worker goroutines.
	RecordSegment(width uint64, primes int, duration time.Duration)

	// RecordFreeRunExtend is called when an unbounded stream extends its
	// frontier. frontier is the new exclusive upper bound.
	RecordFreeRunExtend(frontier uint64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSieve(uint64, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSegment(uint64, int, time.Duration)      {}
func (NoopMetricsCollector) RecordFreeRunExtend(uint64)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SieveCount       atomic.Int64
	SieveErrors      atomic.Int64
	SieveTotalNanos  atomic.Int64
	PrimesProduced   atomic.Int64
	SegmentCount     atomic.Int64
	SegmentTotalNano atomic.Int64
	FreeRunExtends   atomic.Int64
	MaxFrontier      atomic.Uint64
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(limit uint64, primes int, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
		return
	}
	b.PrimesProduced.Add(int64(primes))
}

// RecordSegment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegment(width uint64, primes int, duration time.Duration) {
	b.SegmentCount.Add(1)
	b.SegmentTotalNano.Add(duration.Nanoseconds())
}

// RecordFreeRunExtend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFreeRunExtend(frontier uint64) {
	b.FreeRunExtends.Add(1)
	for {
		cur := b.MaxFrontier.Load()
		if frontier <= cur || b.MaxFrontier.CompareAndSwap(cur, frontier) {
			return
		}
	}
}
