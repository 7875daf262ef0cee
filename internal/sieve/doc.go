// Package sieve implements the segmented Sieve of Eratosthenes that backs
// the public sievego API.
//
// The package is organized as a small pipeline:
//
//   - BasePrimes computes the seed primes up to the square root of the
//     requested bound (single-threaded, odd-only flag buffer).
//   - Planner splits the target range into disjoint, contiguous segments
//     whose flag buffers fit a bounded working set.
//   - SieveSegment marks composites within one segment using only the base
//     primes relevant to it. It is a pure function of its inputs; each
//     segment buffer is exclusively owned by the worker sieving it.
//   - Pipeline fans segments out across a bounded worker pool and releases
//     the per-segment results strictly in segment order, so the merged
//     output is identical to a single-threaded run.
//
// Because segments never share mutable state, no locking is required in the
// hot path. Segment buffers are recycled through a BufferPool to keep the
// steady state allocation-free.
package sieve
