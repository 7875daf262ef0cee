package sievego

import (
	"context"
	"iter"
)

// FreeRun returns a lazy, unbounded ascending stream of primes.
//
// Each returned stream restarts from 2 and owns its own frontier: the
// highest bound sieved so far. The first pull sieves up to the configured
// initial frontier; whenever the consumer exhausts the sieved range, the
// frontier grows by the configured growth factor (rounded up to a whole
// number of segments) and only the new range [old frontier, new frontier)
// is sieved. Previously yielded primes are never re-derived.
//
// Cancellation is cooperative: break out of the loop or cancel ctx and no
// further segments are scheduled; in-flight segments finish and are
// discarded. Primes already yielded remain valid; only the next pull can
// fail, e.g. with ErrLimitOverflow once the frontier reaches MaxLimit.
func (s *Sieve) FreeRun(ctx context.Context) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		lo := uint64(2)
		frontier := s.roundToSegments(s.opts.initialFrontier)
		pl := s.pipeline()

		for {
			stopped := false
			err := pl.Run(ctx, lo, frontier, func(segPrimes []uint64) bool {
				for _, p := range segPrimes {
					if !yield(p, nil) {
						stopped = true
						return false
					}
				}
				return true
			})
			if stopped {
				return
			}
			if err != nil {
				yield(0, translateError(err))
				return
			}

			// Consumer is still pulling: advance the frontier.
			next, err := s.nextFrontier(frontier)
			if err != nil {
				yield(0, err)
				return
			}
			lo = frontier
			frontier = next

			s.metrics.RecordFreeRunExtend(frontier)
			s.logger.LogFreeRunExtend(ctx, frontier)
		}
	}
}

// roundToSegments rounds n up to a whole number of segments, clamped to
// MaxLimit.
func (s *Sieve) roundToSegments(n uint64) uint64 {
	w := s.opts.segmentSize
	if n > MaxLimit-w {
		return MaxLimit
	}
	return (n + w - 1) / w * w
}

// nextFrontier applies the growth policy. The frontier grows monotonically
// and never shrinks; reaching MaxLimit surfaces ErrLimitOverflow instead of
// wrapping.
func (s *Sieve) nextFrontier(cur uint64) (uint64, error) {
	if cur >= MaxLimit {
		return 0, &ErrLimitOverflow{Limit: cur}
	}

	grown := float64(cur) * s.opts.growthFactor
	if grown >= float64(MaxLimit) {
		return MaxLimit, nil
	}

	next := uint64(grown)
	if next <= cur {
		// Degenerate factor; still guarantee progress of at least one segment.
		next = cur + s.opts.segmentSize
	}
	return s.roundToSegments(next), nil
}
