package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the
// configured memory limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for segment buffer memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// SegmentsPerSec is the maximum rate at which new segments may be
	// dispatched. If 0, unlimited.
	SegmentsPerSec float64
}

// Controller governs segment buffer memory and dispatch rate.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	dispatchLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.SegmentsPerSec > 0 {
		// Burst of one segment keeps the pacing smooth.
		c.dispatchLimiter = rate.NewLimiter(rate.Limit(cfg.SegmentsPerSec), 1)
	}

	return c
}

// AcquireMemory attempts to reserve memory for a segment buffer.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
// Non-blocking - callers treat failure as fatal for the request.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the currently reserved bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AwaitDispatch blocks until the pacing limiter permits scheduling another
// segment, or the context is canceled.
func (c *Controller) AwaitDispatch(ctx context.Context) error {
	if c == nil || c.dispatchLimiter == nil {
		// Still honor cancellation on the dispatch path.
		return ctx.Err()
	}
	return c.dispatchLimiter.Wait(ctx)
}
