// Package testutil provides testing utilities for sievego.
//
// This package is intended for use in tests and benchmarks only. It
// provides the known-correct (but memory-hungry) flat reference sieve used
// to cross-validate the segmented implementation, a compressed prime-set
// structure for membership checks at larger scales, and a deterministic RNG
// for sampling candidates.
//
// # Reference Sieve (Ground Truth)
//
//	want := testutil.ReferencePrimes(1_000_000)
//
// # Membership Checks
//
//	set := testutil.NewPrimeSet(want)
//	set.Contains(999983) // true
//
// # Deterministic Sampling
//
//	rng := testutil.NewRNG(seed)
//	x := rng.Uint64n(1_000_000)
package testutil
