package analysis

import (
	"github.com/KaramelBytes/winestats/internal/dataset"
	"github.com/KaramelBytes/winestats/internal/stats"
)

// ComputeGroupStats groups records by AlcoholClass and summarizes the
// extracted values of every group. Groups appear in first-seen order; an
// empty input yields an empty mapping.
func ComputeGroupStats(records []dataset.Record, extract Extractor) stats.Mapping {
	return ComputeGroupStatsBy(records, AlcoholClass, extract)
}

// ComputeGroupStatsBy is ComputeGroupStats with a caller-supplied group key.
func ComputeGroupStatsBy(records []dataset.Record, key KeyFunc, extract Extractor) stats.Mapping {
	order, buckets := stats.Partition(len(records),
		func(i int) string { return key(records[i]) },
		func(i int) float64 { return extract(records[i]) },
	)
	return stats.Aggregate(order, buckets)
}
