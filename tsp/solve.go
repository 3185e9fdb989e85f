package tsp

// Solve runs the full heuristic pipeline: a nearest-neighbor tour improved by
// 2-opt local search. It is the entry point for unordered multi-stop sets
// where the visiting order itself must be determined.
//
// Degenerate inputs (zero or one node) return a trivial zero-cost tour.
// The returned cost is never above the nearest-neighbor construction cost.
//
// Complexity: O(n²) construction + O(passes · n³) improvement.
func Solve(nodes []string, table DistTable) TourResult {
	initial := NearestNeighbor(nodes, table)
	if len(nodes) <= 1 {
		return initial
	}

	return TwoOpt(initial.Tour, table)
}

// tourCost sums the hop distances along tour, using +Inf for absent pairs.
// Complexity: O(n).
func tourCost(tour []string, table DistTable) float64 {
	var total float64
	for i := 0; i < len(tour)-1; i++ {
		total += table.At(tour[i], tour[i+1])
	}

	return total
}

// TourCost is the exported form of tourCost, useful for asserting invariants
// over externally constructed tours.
func TourCost(tour []string, table DistTable) float64 {
	return tourCost(tour, table)
}
