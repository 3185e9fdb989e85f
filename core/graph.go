package core

import (
	"sort"

	"github.com/devu90197/CabDriverAgent/geo"
)

// AddEdge inserts both endpoints as nodes if absent, then records a directed
// edge from→to with the given weight. Adding the same (from, to) pair twice
// overwrites the previous weight. With WithSymmetricEdges() the reverse edge
// is recorded as well.
//
// Errors: ErrEmptyNodeID if either ID is empty, ErrNegativeWeight if
// weightKm < 0. Self-loops are accepted; they are inert for the solvers
// (visited-set logic guarantees termination).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weightKm float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weightKm < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(from)
	g.ensureNode(to)
	g.adj[from][to] = weightKm
	if g.symmetric {
		g.adj[to][from] = weightKm
	}

	return nil
}

// AddNode inserts a bare node with no outgoing edges. Inserting an existing
// node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// SetCoord records the geographic coordinate of a node, inserting the node if
// absent. Coordinates are required only by the A* heuristic.
func (g *Graph) SetCoord(id string, c geo.Coord) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)
	g.coords[id] = c

	return nil
}

// Coord returns the coordinate recorded for id. The second return value is
// false when the node has no coordinate (or does not exist).
func (g *Graph) Coord(id string) (geo.Coord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.coords[id]

	return c, ok
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing (neighbor, weight) list of id, sorted by
// neighbor ID for deterministic iteration.
//
// Errors: ErrNodeNotFound if id is absent.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	ns := make([]Neighbor, 0, len(out))
	for to, w := range out {
		ns = append(ns, Neighbor{ID: to, WeightKm: w})
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i].ID < ns[j].ID })

	return ns, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges stored.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, out := range g.adj {
		n += len(out)
	}

	return n
}

// Weight returns the weight of the directed edge from→to. The second return
// value is false when the edge does not exist.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adj[from]
	if !ok {
		return 0, false
	}
	w, ok := out[to]

	return w, ok
}

// ensureNode inserts id into the adjacency map if absent.
// Caller must hold g.mu.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}
