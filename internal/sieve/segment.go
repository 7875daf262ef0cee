package sieve

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// SieveSegment sieves one segment and returns its primes in ascending order.
//
// buf is the segment's composite-flag buffer (bit j represents the odd
// number firstOdd+2j). It must be cleared and is exclusively owned by the
// caller for the duration of the call; SieveSegment never touches shared
// mutable state, which is what makes segments independently schedulable.
//
// basePrimes must contain every prime <= sqrt(seg.Hi-1). Primes whose square
// is not below seg.Hi contribute no marks and are cut off up front.
func SieveSegment(seg Segment, basePrimes []uint64, buf *bitset.BitSet) []uint64 {
	// First odd candidate in [Lo, Hi).
	firstOdd := seg.Lo | 1

	root := Isqrt(seg.Hi - 1)
	cut := sort.Search(len(basePrimes), func(i int) bool {
		return basePrimes[i] > root
	})

	for _, p := range basePrimes[:cut] {
		if p == 2 {
			// Even numbers are excluded by construction.
			continue
		}

		// First multiple of p within the segment: at least p*p (smaller
		// multiples were struck by smaller primes), rounded up to the next
		// multiple of p at or above Lo, then to odd parity.
		m := p * p
		if m < seg.Lo {
			m = (seg.Lo + p - 1) / p * p
			if m%2 == 0 {
				m += p
			}
		}
		for ; m < seg.Hi; m += 2 * p {
			buf.Set(uint((m - firstOdd) >> 1))
		}
	}

	var primes []uint64
	if count := oddCount(firstOdd, seg.Hi); count > 0 {
		primes = make([]uint64, 0, count)
	}
	if seg.Lo <= 2 && seg.Hi > 2 {
		primes = append(primes, 2)
	}
	for n := firstOdd; n < seg.Hi; n += 2 {
		if !buf.Test(uint((n - firstOdd) >> 1)) {
			primes = append(primes, n)
		}
	}

	return primes
}

// oddCount returns the number of odd integers in [firstOdd, hi) given that
// firstOdd is odd.
func oddCount(firstOdd, hi uint64) uint64 {
	if firstOdd >= hi {
		return 0
	}
	return (hi - firstOdd + 1) / 2
}

// SegmentBufferBits returns the flag-buffer size in bits needed to sieve any
// segment of the given width.
func SegmentBufferBits(width uint64) uint {
	return uint(width/2 + 1)
}

// SegmentBufferBytes returns the flag-buffer footprint in bytes for a
// segment of the given width, used for working-set accounting.
func SegmentBufferBytes(width uint64) int64 {
	bits := uint64(SegmentBufferBits(width))
	words := (bits + 63) / 64
	return int64(words * 8)
}
