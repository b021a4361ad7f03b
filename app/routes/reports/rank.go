package reports

import "sort"

// ComputePositions assigns class positions from per-student aggregates using
// dense ranking: students tied on the same aggregate share a position and the
// next distinct aggregate takes the next one (1,2,2,3).
func ComputePositions(totals map[string]float64) map[string]int {
	distinct := make([]float64, 0, len(totals))
	seen := make(map[float64]bool, len(totals))
	for _, v := range totals {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rankOf[v] = i + 1
	}

	positions := make(map[string]int, len(totals))
	for id, v := range totals {
		positions[id] = rankOf[v]
	}
	return positions
}
