package sievego

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/sievego/internal/resource"
	"github.com/hupe1980/sievego/internal/sieve"
)

// Sieve generates primes over configurable ranges with a bounded working
// set. A Sieve is immutable after construction and safe for concurrent use;
// each request owns its own segment buffers and shares only the read-only
// base primes.
type Sieve struct {
	opts    options
	res     *resource.Controller
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Sieve with the given options.
func New(optFns ...Option) (*Sieve, error) {
	opts := applyOptions(optFns...)

	if opts.segmentSize < 2 || opts.segmentSize > MaxLimit {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegmentSize, opts.segmentSize)
	}
	if opts.growthFactor < 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidGrowthFactor, opts.growthFactor)
	}
	if opts.initialFrontier < 3 {
		opts.initialFrontier = 3
	}

	metrics := opts.metricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	logger := opts.logger
	if logger == nil {
		logger = NoopLogger()
	}

	var res *resource.Controller
	if opts.memoryLimitBytes > 0 || opts.segmentsPerSec > 0 {
		res = resource.NewController(resource.Config{
			MemoryLimitBytes: opts.memoryLimitBytes,
			SegmentsPerSec:   opts.segmentsPerSec,
		})
	}

	return &Sieve{
		opts:    opts,
		res:     res,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// MustNew is like New but panics on error. Use only when options are known
// to be valid (e.g. in tests).
func MustNew(optFns ...Option) *Sieve {
	sv, err := New(optFns...)
	if err != nil {
		panic(err)
	}
	return sv
}

// PrimeNumbers returns all primes in [2, limit) in ascending order.
//
// The request fails atomically: on error no partial sequence is returned.
// Fails with ErrInvalidLimit if limit < 2 and with ErrLimitOverflow if limit
// exceeds MaxLimit.
func (s *Sieve) PrimeNumbers(ctx context.Context, limit uint64) ([]uint64, error) {
	start := time.Now()

	if err := validateLimit(limit); err != nil {
		s.metrics.RecordSieve(limit, 0, time.Since(start), err)
		s.logger.LogSieve(ctx, limit, 0, time.Since(start), err)
		return nil, err
	}

	primes := make([]uint64, 0, sieve.PrimeCountEstimate(limit))
	err := s.pipeline().Run(ctx, 2, limit, func(segPrimes []uint64) bool {
		primes = append(primes, segPrimes...)
		return true
	})
	err = translateError(err)

	s.metrics.RecordSieve(limit, len(primes), time.Since(start), err)
	s.logger.LogSieve(ctx, limit, len(primes), time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return primes, nil
}

// Stream returns the primes in [2, limit) as a lazy iterator, produced in
// segment-sized chunks. The consumer blocks only between segments, never
// mid-segment. Breaking out of the loop stops the underlying sieve; no
// further segments are scheduled.
//
// Validation errors and failures during sieving are yielded as the second
// iteration value; primes yielded before a failure remain valid.
func (s *Sieve) Stream(ctx context.Context, limit uint64) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		if err := validateLimit(limit); err != nil {
			yield(0, err)
			return
		}

		stopped := false
		err := s.pipeline().Run(ctx, 2, limit, func(segPrimes []uint64) bool {
			for _, p := range segPrimes {
				if !yield(p, nil) {
					stopped = true
					return false
				}
			}
			return true
		})
		if err != nil && !stopped {
			yield(0, translateError(err))
		}
	}
}

func (s *Sieve) pipeline() *sieve.Pipeline {
	return sieve.NewPipeline(sieve.Config{
		Workers:      s.opts.workers,
		SegmentWidth: s.opts.segmentSize,
		Controller:   s.res,
		OnSegment: func(seg sieve.Segment, primes int, elapsed time.Duration) {
			s.metrics.RecordSegment(seg.Width(), primes, elapsed)
		},
	})
}

// PrimeNumbers returns all primes in [2, limit) using a default Sieve.
func PrimeNumbers(ctx context.Context, limit uint64) ([]uint64, error) {
	sv, err := New()
	if err != nil {
		return nil, err
	}
	return sv.PrimeNumbers(ctx, limit)
}
