// Package sievego generates prime numbers over very large ranges using a
// segmented, parallel Sieve of Eratosthenes.
//
// The segmented design bounds peak memory independently of the requested
// range: the sieve domain is split into fixed-width segments, each sieved by
// a worker against a shared read-only set of base primes, and the results
// are merged strictly in segment order. Ranges far beyond what a flat
// single-buffer sieve could hold in memory (10^10 and up) stay within a
// configurable working set.
//
// # Quick Start
//
// Generate all primes below a bound:
//
//	ctx := context.Background()
//	sv, err := sievego.New()
//	if err != nil {
//	    panic(err)
//	}
//	primes, err := sv.PrimeNumbers(ctx, 1_000_000)
//
// Stream lazily in segment-sized chunks instead of materializing:
//
//	for p, err := range sv.Stream(ctx, 10_000_000_000) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    process(p)
//	}
//
// Run unbounded; the stream keeps extending its frontier until the consumer
// stops pulling:
//
//	for p, err := range sv.FreeRun(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if p > 1_000_000 {
//	        break // cooperative cancellation: no further segments are sieved
//	    }
//	}
//
// # Tuning
//
// Constructor options control the concurrency and memory profile:
//
//	sv, err := sievego.New(
//	    sievego.WithSegmentSize(1<<22),     // integers per segment
//	    sievego.WithWorkers(8),             // parallel segment workers
//	    sievego.WithMemoryLimit(64<<20),    // cap on in-flight buffer bytes
//	    sievego.WithGrowthFactor(2.0),      // free-run frontier growth
//	)
//
// # Verification Oracle
//
// FindDividends performs an intentionally simple trial-division scan,
// independent of the sieve's own logic, and is used to cross-check primality:
//
//	divs, err := sievego.FindDividends(91)
//	// yields 7, 13
//
// The testutil package additionally provides a known-correct flat reference
// sieve for bounds small enough to fit in memory.
package sievego
