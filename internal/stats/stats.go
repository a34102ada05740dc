package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entry holds the descriptive statistics of one group for one feature.
type Entry struct {
	Mean   float64
	Median float64
	Mode   float64
}

// Summarize computes mean, median and mode of values.
// An empty slice yields a zero Entry.
func Summarize(values []float64) Entry {
	return Entry{
		Mean:   Mean(values),
		Median: Median(values),
		Mode:   Mode(values),
	}
}

// Mean returns the arithmetic mean of values, or 0 when values is empty.
// Values are summed left to right from 0 and the sum is divided by the
// count, so the result is bit-identical to a sequential sum over n.
// NaN and infinities propagate.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	// Unit weights select stat.Mean's sequential loop; the unweighted path
	// uses an unrolled sum with a different rounding order.
	ones := make([]float64, len(values))
	floats.AddConst(1, ones)
	return stat.Mean(values, ones)
}

// Median returns the middle value of the sorted values. For an even count it
// is the mean of the two central values. Returns 0 when values is empty.
// NaN sorts before every number.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode returns the most frequent value. Values are scanned in order and the
// candidate only changes when a value's running count strictly exceeds the
// best count so far, so among equally frequent values the one that reached
// that count first wins. Returns 0 when values is empty.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[uint64]int, len(values))
	maxCount := 0
	mode := values[0]
	for _, v := range values {
		k := modeKey(v)
		counts[k]++
		if counts[k] > maxCount {
			maxCount = counts[k]
			mode = v
		}
	}
	return mode
}

// modeKey buckets values the way they compare as counting keys: every NaN
// shares one bucket and both zeros share another.
func modeKey(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return math.Float64bits(math.NaN())
	case v == 0:
		return 0
	default:
		return math.Float64bits(v)
	}
}
