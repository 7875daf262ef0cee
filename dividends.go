package sievego

import (
	"fmt"
	"iter"

	"github.com/hupe1980/sievego/internal/sieve"
)

// FindDividends returns a lazy ascending sequence of all divisors d of x
// with 1 < d < x. The sequence is empty iff x is prime.
//
// This is the verification oracle: a straightforward trial-division scan to
// sqrt(x) checking every integer, intentionally independent of the sieve's
// own logic so that it stays trustworthy as a cross-check. Divisors up to
// sqrt(x) are yielded as they are found; their complements follow, still in
// ascending order (every complement exceeds sqrt(x)).
//
// Fails with ErrInvalidCandidate if x < 2.
func FindDividends(x uint64) (iter.Seq[uint64], error) {
	if x < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCandidate, x)
	}

	return func(yield func(uint64) bool) {
		root := sieve.Isqrt(x)

		var complements []uint64
		for d := uint64(2); d <= root; d++ {
			if x%d != 0 {
				continue
			}
			if !yield(d) {
				return
			}
			if c := x / d; c != d {
				complements = append(complements, c)
			}
		}

		for i := len(complements) - 1; i >= 0; i-- {
			if !yield(complements[i]) {
				return
			}
		}
	}, nil
}

// IsPrime reports whether x is prime, by checking that FindDividends yields
// nothing. Fails with ErrInvalidCandidate if x < 2.
func IsPrime(x uint64) (bool, error) {
	dividends, err := FindDividends(x)
	if err != nil {
		return false, err
	}
	for range dividends {
		return false, nil
	}
	return true, nil
}
