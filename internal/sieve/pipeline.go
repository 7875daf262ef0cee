package sieve

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sievego/internal/resource"
)

// Config tunes a Pipeline.
type Config struct {
	// Workers is the number of concurrent segment workers.
	// If <= 0, runtime.GOMAXPROCS(0) is used.
	Workers int

	// SegmentWidth is the number of integers covered by each segment.
	// Must be > 0.
	SegmentWidth uint64

	// Controller enforces the working-set budget and optional dispatch
	// pacing. May be nil; all resource methods are nil-safe no-ops.
	Controller *resource.Controller

	// OnSegment, if set, is invoked after each segment is sieved with the
	// segment, its prime count and the sieving duration. It is called from
	// worker goroutines and must be safe for concurrent use.
	OnSegment func(seg Segment, primes int, elapsed time.Duration)
}

// Pipeline fans segment-sieve tasks out across a bounded worker pool and
// releases results strictly in segment order, so the merged output is
// byte-for-byte the single-threaded sequence.
type Pipeline struct {
	cfg Config
}

// NewPipeline creates a Pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{cfg: cfg}
}

type segmentResult struct {
	primes []uint64
	err    error
}

type segmentJob struct {
	seg  Segment
	slot chan segmentResult
}

// Run sieves [lo, hi) and calls emit once per segment with that segment's
// primes, in ascending segment order regardless of completion order.
//
// emit returning false stops the run cooperatively: no further segments are
// scheduled, in-flight segments finish and are discarded, and Run returns
// nil. The first segment failure aborts the whole run; every segment is
// sieved at most once and partial results past a failure are never emitted.
func (pl *Pipeline) Run(ctx context.Context, lo, hi uint64, emit func(primes []uint64) bool) error {
	if lo >= hi {
		return nil
	}

	base := BasePrimes(Isqrt(hi - 1))
	pool := NewBufferPool(pl.cfg.SegmentWidth)
	bufBytes := SegmentBufferBytes(pl.cfg.SegmentWidth)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	// Ordered hand-off: the dispatcher pushes one slot per segment into
	// order, workers fill slots as segments complete, and the consumer
	// below drains slots strictly in segment order. Slots are buffered so
	// a worker never blocks on a slot the consumer has abandoned.
	jobs := make(chan segmentJob)
	order := make(chan chan segmentResult, pl.cfg.Workers*2)

	g.Go(func() error {
		defer close(jobs)
		defer close(order)
		planner := NewPlanner(lo, hi, pl.cfg.SegmentWidth)
		for {
			seg, ok := planner.Next()
			if !ok {
				return nil
			}
			if err := pl.cfg.Controller.AwaitDispatch(ctx); err != nil {
				return err
			}
			slot := make(chan segmentResult, 1)
			select {
			case order <- slot:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- segmentJob{seg: seg, slot: slot}:
			case <-ctx.Done():
				slot <- segmentResult{err: ctx.Err()}
				return ctx.Err()
			}
		}
	})

	for range pl.cfg.Workers {
		g.Go(func() error {
			for job := range jobs {
				job.slot <- pl.sieveOne(ctx, job.seg, base, pool, bufBytes)
			}
			return nil
		})
	}

	var runErr error
	stopped := false
	for slot := range order {
		res := <-slot
		if res.err != nil {
			runErr = res.err
			break
		}
		if !emit(res.primes) {
			stopped = true
			break
		}
	}
	cancel()

	err := g.Wait()
	if stopped {
		// Consumer stopped pulling; cancellation fallout is not an error.
		return nil
	}
	if runErr == nil {
		runErr = err
	}
	return runErr
}

func (pl *Pipeline) sieveOne(ctx context.Context, seg Segment, base []uint64, pool *BufferPool, bufBytes int64) segmentResult {
	// Dispatched before cancellation, but no point sieving for a consumer
	// that is gone.
	if err := ctx.Err(); err != nil {
		return segmentResult{err: err}
	}

	if err := pl.cfg.Controller.AcquireMemory(bufBytes); err != nil {
		return segmentResult{err: fmt.Errorf("segment [%d,%d): %w", seg.Lo, seg.Hi, err)}
	}
	defer pl.cfg.Controller.ReleaseMemory(bufBytes)

	start := time.Now()
	buf := pool.Get()
	primes := SieveSegment(seg, base, buf)
	pool.Put(buf)

	if pl.cfg.OnSegment != nil {
		pl.cfg.OnSegment(seg, len(primes), time.Since(start))
	}

	return segmentResult{primes: primes}
}
