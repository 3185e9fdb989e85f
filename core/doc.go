// Package core defines the central Graph type for the routing engine and
// provides thread-safe primitives for building and querying weighted
// road-network graphs.
//
// Overview:
//
//   - Graph stores a directed adjacency map: node ID → (neighbor ID → weight
//     in kilometers). Inserting the same (from, to) pair twice overwrites the
//     weight; this is a map-of-maps, not a multigraph.
//   - Nodes may carry an optional geographic coordinate, consumed later by
//     the A* heuristic (pathfind); Dijkstra works without coordinates.
//   - Deterministic iteration: Nodes() and Neighbors() return sorted results,
//     so every algorithm built on top of core is reproducible run to run.
//
// Construction:
//
//   - NewGraph + AddEdge for incremental building. With WithSymmetricEdges()
//     every AddEdge records both directions; by default edges are directed
//     and the caller is responsible for symmetrizing.
//   - BuildFromEdges for bulk construction from an edge list, capturing any
//     per-node coordinates carried alongside the edges.
//   - BuildKNN for coordinate-only input: connects every node to its k
//     nearest neighbors by great-circle distance, in both directions. The
//     resulting sparsity is what makes Dijkstra and A* exploration orders
//     differ meaningfully.
//
// Ownership:
//
//   - A Graph, once built, is intended to be read-only for the remainder of a
//     request; solvers never mutate it. Mutation is nevertheless guarded by an
//     internal RWMutex, so sharing a Graph across concurrent solver
//     invocations is safe.
//
// Errors (sentinel):
//
//	ErrEmptyNodeID    — a node ID is the empty string.
//	ErrNodeNotFound   — a queried node does not exist.
//	ErrNegativeWeight — an edge weight is negative.
//	ErrBadK           — BuildKNN called with k < 1.
package core
