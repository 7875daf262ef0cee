// Package resource implements the Controller governing the sieve's working
// set and scheduling rate.
//
// The Controller manages two resource types:
//
//   - Memory: track and cap the bytes reserved for in-flight segment flag
//     buffers (non-blocking, fail-fast)
//   - Dispatch rate: optionally pace how fast new segments are scheduled,
//     so a background free-run stream cannot starve the host application
//     (token bucket)
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for the hard limit and an atomic
// counter for usage. AcquireMemory is non-blocking and returns
// ErrMemoryLimitExceeded immediately if the reservation would exceed the
// limit; sieving is deterministic, so retrying cannot help and the failure
// is surfaced to the caller:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB working set
//	})
//
//	if err := rc.AcquireMemory(bufBytes); err != nil {
//	    return err // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(bufBytes)
//
// # Dispatch Pacing
//
// A token bucket limiter caps segments scheduled per second:
//
//	rc := resource.NewController(resource.Config{
//	    SegmentsPerSec: 100,
//	})
//
//	if err := rc.AwaitDispatch(ctx); err != nil {
//	    return err // context canceled while waiting
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops. This
// allows optional resource limiting without nil checks everywhere.
package resource
