package sievego

const (
	// DefaultSegmentSize is the default number of integers per segment.
	// At one flag per odd integer this is a 64KiB buffer per in-flight
	// segment, small enough to live in L2 on most targets.
	DefaultSegmentSize = 1 << 20

	// DefaultInitialFrontier is the bound the free-run stream sieves up to
	// on its first pull.
	DefaultInitialFrontier = 1 << 20

	// DefaultGrowthFactor is the factor by which the free-run frontier
	// grows when the consumer exhausts previously produced primes.
	DefaultGrowthFactor = 2.0
)

type options struct {
	segmentSize      uint64
	workers          int
	memoryLimitBytes int64
	segmentsPerSec   float64
	growthFactor     float64
	initialFrontier  uint64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Sieve constructor behavior.
type Option func(*options)

// WithSegmentSize sets the number of integers covered by each segment.
// Smaller segments reduce the per-worker working set at the cost of more
// scheduling overhead. The last segment of a range may be narrower.
func WithSegmentSize(n uint64) Option {
	return func(o *options) {
		o.segmentSize = n
	}
}

// WithWorkers sets the number of concurrent segment workers.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMemoryLimit caps the bytes reserved for in-flight segment flag
// buffers. A request whose next segment cannot be reserved fails with
// ErrResourceExhausted; it is never retried because a repeated attempt with
// the same input produces the same failure.
//
// If bytes is 0, usage is tracked but not limited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

// WithSegmentsPerSec paces how fast new segments are dispatched. Useful for
// background free-run streams that should not starve the host application.
// If 0, dispatch is unpaced.
func WithSegmentsPerSec(perSec float64) Option {
	return func(o *options) {
		o.segmentsPerSec = perSec
	}
}

// WithGrowthFactor sets the free-run frontier growth policy. Whenever the
// consumer exhausts the sieved range, the frontier is multiplied by this
// factor (and rounded up to a whole number of segments). Larger factors
// reduce base-prime recomputation; smaller factors reduce over-sieving when
// the consumer stops early.
func WithGrowthFactor(factor float64) Option {
	return func(o *options) {
		o.growthFactor = factor
	}
}

// WithInitialFrontier sets the bound the free-run stream sieves up to on its
// first pull.
func WithInitialFrontier(n uint64) Option {
	return func(o *options) {
		o.initialFrontier = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring sieve
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns ...Option) options {
	opts := options{
		segmentSize:     DefaultSegmentSize,
		growthFactor:    DefaultGrowthFactor,
		initialFrontier: DefaultInitialFrontier,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
