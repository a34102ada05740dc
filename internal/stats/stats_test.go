package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{2.5}, 2.5},
		{"several", []float64{3, 5, 4}, 4},
		{"negative", []float64{-1, -3}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mean(tt.values))
		})
	}
}

func sequentialMean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func TestMeanEqualsSumOverCount(t *testing.T) {
	xs := []float64{0.1, 0.2, 0.3, 7.25, 11, -4.5}
	assert.Equal(t, sequentialMean(xs), Mean(xs))
}

func TestMeanSumsLeftToRight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		xs := make([]float64, 5+rng.Intn(60))
		for j := range xs {
			xs[j] = float64(rng.Intn(500)) / 100
		}
		require.Equal(t, sequentialMean(xs), Mean(xs), "values %v", xs)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{5, 1, 3}, 3},
		{"even averages central pair", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}
}

func TestMedianPermutationInvariant(t *testing.T) {
	perms := [][]float64{
		{1, 2, 3, 4, 10},
		{10, 4, 3, 2, 1},
		{3, 10, 1, 4, 2},
		{2, 1, 10, 3, 4},
	}
	for _, p := range perms {
		assert.Equal(t, 3.0, Median(p))
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_ = Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"all distinct keeps first", []float64{3, 5}, 3},
		{"clear winner", []float64{1, 2, 2, 3}, 2},
		// 1 reaches count 2 at index 2, before 3 does at index 3.
		{"first to reach max count", []float64{3, 1, 1, 3}, 1},
		{"earlier reach wins over earlier first sight", []float64{3, 1, 1, 3, 3}, 3},
		{"zeros share a bucket", []float64{5, 0, math.Copysign(0, -1)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.values))
		})
	}
}

func TestModeCountsNaNTogether(t *testing.T) {
	got := Mode([]float64{1, math.NaN(), math.NaN()})
	assert.True(t, math.IsNaN(got))
}

func TestSummarizePropagatesInfinity(t *testing.T) {
	e := Summarize([]float64{0.02, math.Inf(1), 0.03})
	assert.True(t, math.IsInf(e.Mean, 1))
	assert.Equal(t, 0.03, e.Median)
	assert.Equal(t, 0.02, e.Mode)
}

func TestPartitionAndAggregate(t *testing.T) {
	keys := []string{"b", "a", "b", "c", "a"}
	vals := []float64{1, 2, 3, 4, 6}
	order, buckets := Partition(len(keys), func(i int) string { return keys[i] }, func(i int) float64 { return vals[i] })
	require.Equal(t, []string{"b", "a", "c"}, order)

	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	assert.Equal(t, len(keys), total)

	m := Aggregate(order, buckets)
	require.Len(t, m, 3)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	a, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, Entry{Mean: 4, Median: 4, Mode: 2}, a)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestPartitionEmpty(t *testing.T) {
	order, buckets := Partition(0, nil, nil)
	assert.Empty(t, order)
	assert.Empty(t, Aggregate(order, buckets))
}

func TestMedianSortsNaNFirst(t *testing.T) {
	assert.Equal(t, 1.0, Median([]float64{3, math.NaN(), 1}))
	assert.Equal(t, 3.0, Median([]float64{6, 4, math.NaN(), 2}))
	assert.True(t, math.IsNaN(Median([]float64{math.NaN(), 5})))
}
