package sievego_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/testutil"
)

func TestPrimeNumbers_Boundaries(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew()

	tests := []struct {
		limit uint64
		want  []uint64
	}{
		{2, nil},
		{3, []uint64{2}},
		{4, []uint64{2, 3}},
		{5, []uint64{2, 3}},
		{6, []uint64{2, 3, 5}},
		{30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}

	for _, tt := range tests {
		got, err := sv.PrimeNumbers(ctx, tt.limit)
		require.NoError(t, err)
		if len(tt.want) == 0 {
			assert.Empty(t, got, "limit %d", tt.limit)
		} else {
			assert.Equal(t, tt.want, got, "limit %d", tt.limit)
		}
	}
}

func TestPrimeNumbers_InvalidLimit(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew()

	for _, limit := range []uint64{0, 1} {
		got, err := sv.PrimeNumbers(ctx, limit)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, sievego.ErrInvalidLimit)
	}
}

func TestPrimeNumbers_Overflow(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew()

	_, err := sv.PrimeNumbers(ctx, sievego.MaxLimit+1)
	var overflow *sievego.ErrLimitOverflow
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, sievego.MaxLimit+1, overflow.Limit)
}

func TestPrimeNumbers_MatchesReference(t *testing.T) {
	ctx := context.Background()
	// Small segments force the parallel path through many segments.
	sv := sievego.MustNew(sievego.WithSegmentSize(1<<12), sievego.WithWorkers(8))

	const limit = 1000000
	got, err := sv.PrimeNumbers(ctx, limit)
	require.NoError(t, err)

	want := testutil.ReferencePrimes(limit)
	require.Equal(t, len(want), len(got))
	assert.Equal(t, want, got)
}

func TestPrimeNumbers_MatchesReferenceLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("sieves and cross-checks 10^7")
	}
	ctx := context.Background()
	sv := sievego.MustNew(sievego.WithSegmentSize(1 << 16))

	const limit = 10000000
	got, err := sv.PrimeNumbers(ctx, limit)
	require.NoError(t, err)

	want := testutil.ReferencePrimes(limit)
	require.Equal(t, len(want), len(got))
	assert.Equal(t, want, got)
}

func TestPrimeNumbers_Idempotent(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew(sievego.WithSegmentSize(997))

	first, err := sv.PrimeNumbers(ctx, 100000)
	require.NoError(t, err)
	second, err := sv.PrimeNumbers(ctx, 100000)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPrimeNumbers_MemoryLimit(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew(
		sievego.WithSegmentSize(1<<16),
		sievego.WithMemoryLimit(1), // no segment buffer can be reserved
	)

	got, err := sv.PrimeNumbers(ctx, 1000000)
	assert.Nil(t, got, "failed request must not yield a partial sequence")
	assert.ErrorIs(t, err, sievego.ErrResourceExhausted)
}

func TestStream_MatchesPrimeNumbers(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew(sievego.WithSegmentSize(1 << 10))

	want, err := sv.PrimeNumbers(ctx, 100000)
	require.NoError(t, err)

	var got []uint64
	for p, err := range sv.Stream(ctx, 100000) {
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

func TestStream_EarlyBreak(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew(sievego.WithSegmentSize(1 << 10))

	var got []uint64
	for p, err := range sv.Stream(ctx, 1<<30) {
		require.NoError(t, err)
		got = append(got, p)
		if len(got) == 100 {
			break
		}
	}
	assert.Len(t, got, 100)
	assert.Equal(t, uint64(541), got[99]) // the 100th prime
}

func TestStream_InvalidLimit(t *testing.T) {
	ctx := context.Background()
	sv := sievego.MustNew()

	var streamErr error
	for _, err := range sv.Stream(ctx, 1) {
		streamErr = err
		break
	}
	assert.ErrorIs(t, streamErr, sievego.ErrInvalidLimit)
}

func TestStream_ContextCancellation(t *testing.T) {
	sv := sievego.MustNew(sievego.WithSegmentSize(1 << 10))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var streamErr error
	count := 0
	for _, err := range sv.Stream(ctx, 1<<40) {
		if err != nil {
			streamErr = err
			break
		}
		count++
		if count == 1000 {
			cancel()
		}
	}
	assert.True(t, errors.Is(streamErr, context.Canceled), "got %v", streamErr)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := sievego.New(sievego.WithSegmentSize(1))
	assert.ErrorIs(t, err, sievego.ErrInvalidSegmentSize)

	_, err = sievego.New(sievego.WithGrowthFactor(0.5))
	assert.ErrorIs(t, err, sievego.ErrInvalidGrowthFactor)
}

func TestPackageLevelPrimeNumbers(t *testing.T) {
	got, err := sievego.PrimeNumbers(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestMetricsCollector(t *testing.T) {
	ctx := context.Background()
	metrics := &sievego.BasicMetricsCollector{}
	sv := sievego.MustNew(
		sievego.WithSegmentSize(1000),
		sievego.WithMetricsCollector(metrics),
	)

	got, err := sv.PrimeNumbers(ctx, 10000)
	require.NoError(t, err)

	assert.Equal(t, int64(1), metrics.SieveCount.Load())
	assert.Equal(t, int64(len(got)), metrics.PrimesProduced.Load())
	assert.Equal(t, int64(10), metrics.SegmentCount.Load())

	_, err = sv.PrimeNumbers(ctx, 0)
	require.Error(t, err)
	assert.Equal(t, int64(1), metrics.SieveErrors.Load())
}

func BenchmarkPrimeNumbers_10M(b *testing.B) {
	ctx := context.Background()
	sv := sievego.MustNew()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := sv.PrimeNumbers(ctx, 10_000_000); err != nil {
			b.Fatal(err)
		}
	}
}
