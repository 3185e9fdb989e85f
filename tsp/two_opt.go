package tsp

// TwoOpt improves a closed tour with first-improvement 2-opt local search.
//
// The scan walks all index pairs (i, j) with i in [1, len-2) and j in
// (i, len), skipping adjacent pairs (j-i == 1), reverses the segment [i, j),
// and recomputes the full tour cost. The first strictly improving reversal is
// kept and the scan restarts from the top; the search terminates when a
// complete pass accepts nothing.
//
// The input tour is never mutated; the tour's endpoints (index 0 and the
// closing duplicate) are never moved. Tours too short to have a reversible
// interior are returned unchanged.
//
// Complexity: O(n³) per pass (n² candidates, O(n) recomputation each);
// pass count is unbounded in the worst case, so callers bound input size.
func TwoOpt(tour []string, table DistTable) TourResult {
	best := append([]string(nil), tour...)
	bestCost := tourCost(best, table)

	if len(best) < 5 {
		// Fewer than 3 distinct interior-reversible nodes: no non-adjacent
		// (i, j) pair exists.
		return TourResult{Tour: best, CostKm: bestCost}
	}

	improved := true
	for improved {
		improved = false

	scan:
		for i := 1; i < len(best)-2; i++ {
			for j := i + 1; j < len(best); j++ {
				if j-i == 1 {
					continue // adjacent: reversal is a no-op
				}

				cand := append([]string(nil), best...)
				reverseSegment(cand, i, j)

				if c := tourCost(cand, table); c < bestCost {
					best = cand
					bestCost = c
					improved = true

					break scan // first improvement: restart the scan
				}
			}
		}
	}

	return TourResult{Tour: best, CostKm: bestCost}
}

// reverseSegment reverses tour[i:j) in place.
func reverseSegment(tour []string, i, j int) {
	for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
		tour[lo], tour[hi] = tour[hi], tour[lo]
	}
}
