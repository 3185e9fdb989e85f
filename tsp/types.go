package tsp

import (
	"math"

	"github.com/devu90197/CabDriverAgent/geo"
)

// Pair is an ordered (from, to) key of a DistTable.
type Pair struct {
	From string
	To   string
}

// DistTable holds pairwise distances in kilometers. Lookups of absent pairs
// yield +Inf, forbidding the hop rather than failing.
type DistTable map[Pair]float64

// At returns the distance from u to v, or +Inf when the pair is absent.
func (t DistTable) At(u, v string) float64 {
	if d, ok := t[Pair{From: u, To: v}]; ok {
		return d
	}

	return math.Inf(1)
}

// Set records the distance from u to v (one direction only).
func (t DistTable) Set(u, v string, km float64) {
	t[Pair{From: u, To: v}] = km
}

// SetSymmetric records the distance in both directions.
func (t DistTable) SetSymmetric(u, v string, km float64) {
	t.Set(u, v, km)
	t.Set(v, u, km)
}

// TableFromCoords builds a symmetric great-circle DistTable over ids, using
// the supplied coordinate lookup. IDs without coordinates are skipped, which
// leaves their pairs at +Inf.
// Complexity: O(n²).
func TableFromCoords(ids []string, coords map[string]geo.Coord) DistTable {
	t := make(DistTable, len(ids)*len(ids))
	for i, u := range ids {
		cu, ok := coords[u]
		if !ok {
			continue
		}
		for _, v := range ids[i+1:] {
			cv, ok := coords[v]
			if !ok {
				continue
			}
			t.SetSymmetric(u, v, geo.Haversine(cu, cv))
		}
	}

	return t
}

// TourResult holds the outcome of a tour construction or improvement.
type TourResult struct {
	// Tour is the sequence of node IDs. For n ≥ 2 input nodes it is a closed
	// loop: len(Tour) == n+1 and Tour[0] == Tour[n]. Degenerate inputs yield
	// the input itself (empty or single-element, not closed).
	Tour []string

	// CostKm is the total length of the tour; +Inf when a required hop has no
	// distance entry.
	CostKm float64
}
