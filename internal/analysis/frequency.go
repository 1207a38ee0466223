package analysis

import (
	"math"
	"sort"
	"strconv"

	"godash/domain/aggregates"
)

// DefaultTopN is the length of the frequency ranking, and its upper limit
const DefaultTopN = 10

// ComputeTopValues ranks distinct values by descending frequency.
// Ties keep first-encountered order; missing cells are not counted.
func ComputeTopValues(column string, values []float64, topN int) *aggregates.TopValues {
	if topN <= 0 || topN > DefaultTopN {
		topN = DefaultTopN
	}

	counts := make(map[float64]int)
	order := make([]float64, 0)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	entries := make([]aggregates.ValueCount, len(order))
	for i, v := range order {
		entries[i] = aggregates.ValueCount{
			Value: v,
			Label: strconv.FormatFloat(v, 'g', -1, 64),
			Count: counts[v],
		}
	}
	return &aggregates.TopValues{Column: column, Entries: entries}
}
