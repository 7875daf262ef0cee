package sieve

import (
	"github.com/bits-and-blooms/bitset"
)

// BasePrimes returns all primes <= limit in ascending order.
//
// This is the classic single-buffer Eratosthenes sieve. Only odd candidates
// are tracked (bit i represents the odd number 2i+1), which halves both
// memory and iteration; 2 is prepended to the result.
//
// BasePrimes is only ever invoked with the square root of a sieve bound, so
// the flag buffer is small and a single thread is sufficient.
func BasePrimes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}

	primes := make([]uint64, 0, PrimeCountEstimate(limit+1))
	primes = append(primes, 2)
	if limit == 2 {
		return primes
	}

	// composite bit i <=> odd number 2i+1 is composite; i=0 (the number 1)
	// is never read.
	composite := bitset.New(uint(limit/2 + 1))

	for p := uint64(3); p*p <= limit; p += 2 {
		if composite.Test(uint(p >> 1)) {
			continue
		}
		// Multiples below p*p were marked by smaller primes; even
		// multiples are not represented, so stride by 2p.
		for m := p * p; m <= limit; m += 2 * p {
			composite.Set(uint(m >> 1))
		}
	}

	for n := uint64(3); n <= limit; n += 2 {
		if !composite.Test(uint(n >> 1)) {
			primes = append(primes, n)
		}
	}

	return primes
}
