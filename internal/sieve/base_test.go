package sieve

import (
	"slices"
	"testing"

	"github.com/hupe1980/sievego/testutil"
)

func TestBasePrimes_Small(t *testing.T) {
	tests := []struct {
		limit uint64
		want  []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{3, []uint64{2, 3}},
		{4, []uint64{2, 3}},
		{5, []uint64{2, 3, 5}},
		{10, []uint64{2, 3, 5, 7}},
		{30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{31, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}},
	}

	for _, tt := range tests {
		got := BasePrimes(tt.limit)
		if !slices.Equal(got, tt.want) {
			t.Errorf("BasePrimes(%d) = %v, want %v", tt.limit, got, tt.want)
		}
	}
}

func TestBasePrimes_MatchesReference(t *testing.T) {
	// BasePrimes is inclusive of limit, the reference sieve is exclusive.
	const limit = 100000
	want := testutil.ReferencePrimes(limit + 1)
	got := BasePrimes(limit)
	if !slices.Equal(got, want) {
		t.Fatalf("BasePrimes(%d) differs from reference: got %d primes, want %d", uint64(limit), len(got), len(want))
	}
}

func TestBasePrimes_SquareLimit(t *testing.T) {
	// Limits that are squares of primes exercise the p*p <= limit boundary.
	got := BasePrimes(49)
	if got[len(got)-1] != 47 {
		t.Errorf("BasePrimes(49) ends with %d, want 47", got[len(got)-1])
	}
	got = BasePrimes(121)
	if got[len(got)-1] != 113 {
		t.Errorf("BasePrimes(121) ends with %d, want 113", got[len(got)-1])
	}
}

func BenchmarkBasePrimes(b *testing.B) {
	for b.Loop() {
		BasePrimes(100000) // sqrt of a 10^10 bound
	}
}
