package core

import (
	"sort"

	"github.com/devu90197/CabDriverAgent/geo"
)

// DefaultKNN is the neighbor count used when building a graph from raw
// coordinates without an explicit k. Three neighbors produce a sparse,
// realistic network on which Dijkstra and A* explore differently.
const DefaultKNN = 3

// BuildFromEdges bulk-constructs a Graph from an edge list, capturing any
// per-node coordinates carried alongside the edges.
//
// Each Edge is inserted exactly as given (directed); undirected datasets must
// carry both directions or the graph must be created WithSymmetricEdges via
// opts. Duplicate (from, to) pairs overwrite.
//
// Errors: ErrEmptyNodeID / ErrNegativeWeight from AddEdge, surfaced with the
// offending edge untouched by any partial rollback (the returned graph is
// discarded on error).
//
// Complexity: O(E) expected.
func BuildFromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.WeightKm); err != nil {
			return nil, err
		}
		if e.FromCoord != nil {
			if err := g.SetCoord(e.From, *e.FromCoord); err != nil {
				return nil, err
			}
		}
		if e.ToCoord != nil {
			if err := g.SetCoord(e.To, *e.ToCoord); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// BuildKNN constructs a sparse graph from coordinate-only input by connecting
// every node to its k nearest neighbors by great-circle distance. Both
// directions of every connection are recorded, so the result is symmetric
// even when nearest-neighbor relations are not mutual.
//
// Ties in distance are broken by input order (stable sort), keeping the
// construction deterministic. k is clamped to len(nodes)-1; pass
// DefaultKNN when in doubt.
//
// Errors: ErrBadK when k < 1, ErrEmptyNodeID on a blank node ID.
//
// Complexity: O(V² log V): pairwise distances plus a sort per node. Intended
// for waypoint-scale inputs, not continent-scale road networks.
func BuildKNN(nodes []Node, k int) (*Graph, error) {
	if k < 1 {
		return nil, ErrBadK
	}

	g := NewGraph()

	// First pass: register every node and its coordinate so isolated nodes
	// (n == 1) still appear as graph keys.
	for _, n := range nodes {
		if err := g.SetCoord(n.ID, n.Coord); err != nil {
			return nil, err
		}
	}

	// candidate is a (distance, node) pair for per-node neighbor ranking.
	type candidate struct {
		dist float64
		id   string
	}

	for i, n := range nodes {
		cands := make([]candidate, 0, len(nodes)-1)
		for j, m := range nodes {
			if i == j {
				continue
			}
			cands = append(cands, candidate{
				dist: geo.Haversine(n.Coord, m.Coord),
				id:   m.ID,
			})
		}

		// Stable sort keeps input order on exact distance ties.
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].dist < cands[b].dist })

		limit := k
		if limit > len(cands) {
			limit = len(cands)
		}
		for c := 0; c < limit; c++ {
			// Record both directions; map-of-maps semantics dedup repeats.
			if err := g.AddEdge(n.ID, cands[c].id, cands[c].dist); err != nil {
				return nil, err
			}
			if err := g.AddEdge(cands[c].id, n.ID, cands[c].dist); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
