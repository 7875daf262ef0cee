package testutil

import (
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ReferencePrimes returns all primes in [2, limit) using the unoptimized
// single-buffer Sieve of Eratosthenes.
//
// Peak memory is O(limit), so this is only feasible for bounds that fit in
// memory comfortably (up to ~10^7 in routine test runs). It is deliberately
// the most literal rendition of the algorithm: one flag per integer, no odd
// packing, no segmentation, so there is nothing subtle to get wrong.
func ReferencePrimes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit)
	for x := uint64(2); x*x < limit; x++ {
		if composite[x] {
			continue
		}
		for y := x * x; y < limit; y += x {
			composite[y] = true
		}
	}

	var primes []uint64
	for x := uint64(2); x < limit; x++ {
		if !composite[x] {
			primes = append(primes, x)
		}
	}
	return primes
}

// PrimeSet is a compressed membership structure over a set of primes,
// backed by a Roaring bitmap so that cross-checks over millions of primes
// stay cheap.
type PrimeSet struct {
	bm *roaring64.Bitmap
}

// NewPrimeSet builds a PrimeSet from the given primes.
func NewPrimeSet(primes []uint64) *PrimeSet {
	bm := roaring64.New()
	for _, p := range primes {
		bm.Add(p)
	}
	return &PrimeSet{bm: bm}
}

// Contains reports whether x is in the set.
func (s *PrimeSet) Contains(x uint64) bool {
	return s.bm.Contains(x)
}

// Cardinality returns the number of primes in the set.
func (s *PrimeSet) Cardinality() uint64 {
	return s.bm.GetCardinality()
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random number in [0,n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}
