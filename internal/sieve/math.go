package sieve

import "math"

// Isqrt returns the integer square root of n, i.e. the largest r with
// r*r <= n.
//
// float64 conversion alone is not exact near perfect squares for large n,
// so the initial estimate is clamped to the largest possible root and then
// corrected by at most one step in each direction. Exact for the full
// uint64 range; the correction arithmetic cannot wrap.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	const maxRoot = 1<<32 - 1
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r > 0 && r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// PrimeCountEstimate returns an upper estimate of the number of primes
// below n, used to presize result slices. Uses Dusart's bound
// pi(x) <= x/ln(x) * (1 + 1.2762/ln(x)); never returns 0 for n >= 2.
func PrimeCountEstimate(n uint64) int {
	if n < 2 {
		return 0
	}
	if n < 17 {
		return 7
	}
	ln := math.Log(float64(n))
	est := float64(n) / ln * (1 + 1.2762/ln)
	return int(est) + 1
}
