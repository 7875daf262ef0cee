package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencePrimes(t *testing.T) {
	assert.Nil(t, ReferencePrimes(0))
	assert.Nil(t, ReferencePrimes(2))
	assert.Equal(t, []uint64{2}, ReferencePrimes(3))
	assert.Equal(t, []uint64{2, 3}, ReferencePrimes(4))
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, ReferencePrimes(30))

	// pi(10^5) = 9592
	assert.Len(t, ReferencePrimes(100000), 9592)
}

func TestPrimeSet(t *testing.T) {
	primes := ReferencePrimes(100)
	set := NewPrimeSet(primes)

	assert.Equal(t, uint64(25), set.Cardinality())
	assert.True(t, set.Contains(97))
	assert.False(t, set.Contains(91))
	assert.False(t, set.Contains(1))
}

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for range 100 {
		assert.Equal(t, a.Uint64n(1000000), b.Uint64n(1000000))
	}

	a.Reset()
	c := NewRNG(a.Seed())
	assert.Equal(t, c.Intn(1000), a.Intn(1000))
}
