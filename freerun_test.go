package sievego_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego"
)

// smallFreeRunSieve forces many frontier extensions within a short run.
func smallFreeRunSieve(t *testing.T) *sievego.Sieve {
	t.Helper()
	return sievego.MustNew(
		sievego.WithSegmentSize(64),
		sievego.WithInitialFrontier(128),
		sievego.WithGrowthFactor(2.0),
	)
}

func takePrimes(t *testing.T, sv *sievego.Sieve, n int) []uint64 {
	t.Helper()
	out := make([]uint64, 0, n)
	for p, err := range sv.FreeRun(context.Background()) {
		require.NoError(t, err)
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestFreeRun_MatchesBoundedMode(t *testing.T) {
	sv := smallFreeRunSieve(t)

	got := takePrimes(t, sv, 10000)

	// The free-run sequence must equal prime_numbers at any bound the
	// frontier has reached: no repeats, no omissions.
	want, err := sv.PrimeNumbers(context.Background(), got[len(got)-1]+1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFreeRun_StrictlyIncreasing(t *testing.T) {
	sv := smallFreeRunSieve(t)

	got := takePrimes(t, sv, 5000)
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i], got[i-1], "position %d", i)
	}
}

func TestFreeRun_RestartsFromStart(t *testing.T) {
	sv := smallFreeRunSieve(t)

	first := takePrimes(t, sv, 100)
	second := takePrimes(t, sv, 100)

	// Each stream instance owns its own frontier and restarts from 2.
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(2), first[0])
}

func TestFreeRun_Prefix(t *testing.T) {
	sv := smallFreeRunSieve(t)

	got := takePrimes(t, sv, 10)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestFreeRun_ContextCancellation(t *testing.T) {
	sv := sievego.MustNew(sievego.WithSegmentSize(1 << 10))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var streamErr error
	count := 0
	for _, err := range sv.FreeRun(ctx) {
		if err != nil {
			streamErr = err
			break
		}
		count++
		if count == 500 {
			cancel()
		}
	}
	assert.ErrorIs(t, streamErr, context.Canceled)
	assert.GreaterOrEqual(t, count, 500)
}

func TestFreeRun_ExtendRecorded(t *testing.T) {
	metrics := &sievego.BasicMetricsCollector{}
	sv := sievego.MustNew(
		sievego.WithSegmentSize(64),
		sievego.WithInitialFrontier(128),
		sievego.WithMetricsCollector(metrics),
	)

	// Pull far enough past the initial frontier to force extensions.
	primes := takePrimes(t, sv, 2000)
	require.Greater(t, primes[len(primes)-1], uint64(128))

	assert.Positive(t, metrics.FreeRunExtends.Load())
	assert.Greater(t, metrics.MaxFrontier.Load(), uint64(128))
}
