package tsp

// NearestNeighbor constructs an initial closed tour greedily: starting from
// nodes[0], repeatedly move to the nearest not-yet-visited node, then return
// to the start to close the loop.
//
// Ties are broken by input iteration order: the first minimal distance
// encountered wins, keeping the construction deterministic. Hops without a
// table entry cost +Inf; they are taken only when every remaining hop is
// equally forbidden, so the resulting cost surfaces as +Inf instead of an
// error.
//
// Degenerate input (zero or one node) returns the input as-is with cost 0.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(nodes []string, table DistTable) TourResult {
	if len(nodes) <= 1 {
		return TourResult{Tour: append([]string(nil), nodes...), CostKm: 0}
	}

	visited := make(map[string]bool, len(nodes))
	tour := make([]string, 0, len(nodes)+1)

	current := nodes[0]
	visited[current] = true
	tour = append(tour, current)

	var total float64
	for len(tour) < len(nodes) {
		// Scan the input slice in order so equal distances resolve to the
		// earliest candidate.
		nearest := ""
		best := 0.0
		for _, cand := range nodes {
			if visited[cand] {
				continue
			}
			d := table.At(current, cand)
			if nearest == "" || d < best {
				nearest = cand
				best = d
			}
		}

		total += best
		current = nearest
		visited[current] = true
		tour = append(tour, current)
	}

	// Close the loop back to the start.
	total += table.At(current, nodes[0])
	tour = append(tour, nodes[0])

	return TourResult{Tour: tour, CostKm: total}
}
