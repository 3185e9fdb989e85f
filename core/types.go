package core

import (
	"errors"
	"sync"

	"github.com/devu90197/CabDriverAgent/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	// Shortest-path algorithms in this module require non-negative weights.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadK indicates BuildKNN was called with a neighbor count below one.
	ErrBadK = errors.New("core: k must be at least 1")
)

// Node pairs a caller-defined identifier with its geographic coordinate.
// It is the input unit for BuildKNN.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string `json:"id"`

	// Coord is the node's position, used for KNN connectivity and the
	// A* heuristic.
	Coord geo.Coord `json:"coord"`
}

// Edge describes one weighted directed connection for bulk construction.
//
// FromCoord and ToCoord are optional; when present, BuildFromEdges records
// them as node coordinates so the A* heuristic can be used later.
type Edge struct {
	// From is the source node ID.
	From string `json:"from"`

	// To is the destination node ID.
	To string `json:"to"`

	// WeightKm is the travel cost of the edge, in kilometers or an abstract
	// non-negative cost unit.
	WeightKm float64 `json:"weight_km"`

	// FromCoord is the optional coordinate of the source node.
	FromCoord *geo.Coord `json:"from_coord,omitempty"`

	// ToCoord is the optional coordinate of the destination node.
	ToCoord *geo.Coord `json:"to_coord,omitempty"`
}

// Neighbor is one outgoing (neighbor, weight) entry of an adjacency list.
type Neighbor struct {
	// ID is the neighbor node's identifier.
	ID string

	// WeightKm is the weight of the edge leading to the neighbor.
	WeightKm float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSymmetricEdges makes every AddEdge record both directions, turning the
// Graph effectively undirected. Without it, edges are directed and the caller
// symmetrizes explicitly where needed.
func WithSymmetricEdges() GraphOption {
	return func(g *Graph) { g.symmetric = true }
}

// Graph is the in-memory weighted road-network graph.
//
// adj[(from)ID][(to)ID] = weight in km. Every node referenced by an edge
// endpoint appears as a key of adj, possibly with an empty neighbor map.
// coords holds the optional per-node coordinates.
// mu guards all three fields; read accessors take the read lock only.
type Graph struct {
	mu sync.RWMutex

	symmetric bool // AddEdge records both directions when true

	adj    map[string]map[string]float64
	coords map[string]geo.Coord
}

// NewGraph creates an empty Graph. By default edges are directed; pass
// WithSymmetricEdges() for undirected semantics.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj:    make(map[string]map[string]float64),
		coords: make(map[string]geo.Coord),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
