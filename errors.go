package sievego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sievego/internal/resource"
)

// MaxLimit is the largest supported sieve bound. Bounds above it would allow
// first-multiple and odd-index arithmetic to wrap uint64, so they are
// rejected up front instead of silently overflowing.
const MaxLimit uint64 = 1 << 62

var (
	// ErrInvalidLimit is returned when a sieve bound is below 2.
	ErrInvalidLimit = errors.New("limit must be at least 2")

	// ErrInvalidCandidate is returned when a dividend-finder input is below 2.
	ErrInvalidCandidate = errors.New("candidate must be at least 2")

	// ErrInvalidSegmentSize is returned when the configured segment size is
	// outside [2, MaxLimit].
	ErrInvalidSegmentSize = errors.New("invalid segment size")

	// ErrInvalidGrowthFactor is returned when the free-run growth factor is below 1.
	ErrInvalidGrowthFactor = errors.New("growth factor must be at least 1")

	// ErrResourceExhausted is returned when a segment buffer reservation fails.
	// Sieving is deterministic, so the failure is fatal for the request and
	// never retried internally.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ErrLimitOverflow indicates a bound beyond the supported integer width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLimitOverflow struct {
	Limit uint64
	cause error
}

func (e *ErrLimitOverflow) Error() string {
	return fmt.Sprintf("limit %d exceeds maximum supported bound %d", e.Limit, MaxLimit)
}

func (e *ErrLimitOverflow) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}

func validateLimit(limit uint64) error {
	if limit < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if limit > MaxLimit {
		return &ErrLimitOverflow{Limit: limit}
	}
	return nil
}
