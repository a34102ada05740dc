package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/winestats/internal/dataset"
	"github.com/KaramelBytes/winestats/internal/stats"
)

func wine(class, flavanoids float64) dataset.Record {
	return dataset.Record{Alcohol: dataset.Measure(class), Flavanoids: dataset.Measure(flavanoids)}
}

func TestComputeGroupStatsEndToEnd(t *testing.T) {
	recs := []dataset.Record{wine(1, 3.0), wine(1, 5.0), wine(2, 4.0)}

	m := ComputeGroupStats(recs, Flavanoids)
	require.Equal(t, []string{"Class 1", "Class 2"}, m.Keys())

	c1, _ := m.Get("Class 1")
	assert.Equal(t, stats.Entry{Mean: 4, Median: 4, Mode: 3}, c1)
	c2, _ := m.Get("Class 2")
	assert.Equal(t, stats.Entry{Mean: 4, Median: 4, Mode: 4}, c2)

	tbl, err := ToTable(m, "Flavanoids Statistics")
	require.NoError(t, err)
	assert.Equal(t, []string{"4.000", "4.000"}, tbl.Rows[0].Values)
	assert.Equal(t, []string{"3.000", "4.000"}, tbl.Rows[2].Values)
}

func TestComputeGroupStatsEmpty(t *testing.T) {
	m := ComputeGroupStats(nil, Flavanoids)
	assert.Empty(t, m)
}

func TestComputeGroupStatsFirstSeenOrder(t *testing.T) {
	recs := []dataset.Record{wine(3, 1), wine(1, 1), wine(3, 2), wine(2, 1)}
	m := ComputeGroupStats(recs, Flavanoids)
	assert.Equal(t, []string{"Class 3", "Class 1", "Class 2"}, m.Keys())
}

func TestComputeGroupStatsNoLeakage(t *testing.T) {
	recs := []dataset.Record{wine(1, 10), wine(2, 100), wine(1, 20), wine(2, 200)}
	m := ComputeGroupStats(recs, Flavanoids)

	c1, _ := m.Get("Class 1")
	c2, _ := m.Get("Class 2")
	assert.Equal(t, 15.0, c1.Mean)
	assert.Equal(t, 150.0, c2.Mean)
}

func TestComputeGroupStatsPartitionCoversInput(t *testing.T) {
	recs, err := dataset.Default()
	require.NoError(t, err)

	var total int
	counter := func(r dataset.Record) float64 { total++; return 0 }
	m := ComputeGroupStats(recs, counter)
	assert.Equal(t, len(recs), total)
	assert.Len(t, m, 3)
}

func TestGamma(t *testing.T) {
	r := dataset.Record{Ash: 2, Hue: 1, Magnesium: 100}
	assert.Equal(t, 0.02, Gamma(r))
}

func TestGammaDivisionByZeroPropagates(t *testing.T) {
	recs := []dataset.Record{
		{Alcohol: 1, Ash: 2, Hue: 1, Magnesium: 100},
		{Alcohol: 1, Ash: 2, Hue: 1, Magnesium: 0},
		{Alcohol: 1, Ash: 3, Hue: 1, Magnesium: 100},
	}
	m := ComputeGroupStats(recs, Gamma)
	e, ok := m.Get("Class 1")
	require.True(t, ok)
	assert.True(t, math.IsInf(e.Mean, 1))
	assert.Equal(t, 0.03, e.Median)

	tbl, err := ToTable(m, "Gamma Statistics")
	require.NoError(t, err)
	assert.Equal(t, "Infinity", tbl.Rows[0].Values[0])
	assert.Equal(t, "0.030", tbl.Rows[1].Values[0])
}

func TestMissingFieldsPropagateNaN(t *testing.T) {
	recs := []dataset.Record{dataset.Blank()}
	m := ComputeGroupStats(recs, Gamma)
	require.Equal(t, []string{"Class NaN"}, m.Keys())
	assert.True(t, math.IsNaN(m[0].Mean))
}

func TestClassKey(t *testing.T) {
	key, err := ClassKey("hue", "Hue ")
	require.NoError(t, err)
	assert.Equal(t, "Hue 1.04", key(dataset.Record{Hue: 1.04}))

	_, err = ClassKey("Proline", DefaultClassPrefix)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestLookupFeature(t *testing.T) {
	f, err := LookupFeature("Malic Acid")
	require.NoError(t, err)
	assert.Equal(t, "malic-acid", f.Name)
	assert.Equal(t, 1.5, f.Extract(dataset.Record{MalicAcid: 1.5}))

	f, err = LookupFeature("GAMMA")
	require.NoError(t, err)
	assert.Equal(t, "Gamma Statistics", f.Title())

	f, err = LookupFeature("od280-od315-of-diluted-wines")
	require.NoError(t, err)
	assert.Equal(t, "OD280/OD315 of diluted wines", f.Label)

	_, err = LookupFeature("proline")
	assert.ErrorIs(t, err, ErrUnknownFeature)
}
