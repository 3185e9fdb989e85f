package pathfind

import "errors"

// Sentinel errors returned by the shortest-path solvers.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound indicates the start or end node is absent from the graph.
	ErrNodeNotFound = errors.New("pathfind: node not found in graph")

	// ErrMissingCoordinates indicates A* was requested but a node involved in
	// the search has no recorded coordinate for the heuristic. Dijkstra does
	// not require coordinates and never returns this error.
	ErrMissingCoordinates = errors.New("pathfind: missing coordinate data for A* heuristic")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the supported set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Algorithm selects the frontier priority function of the shared search
// skeleton. Selection is always an explicit caller decision, never inferred.
type Algorithm int

const (
	// Dijkstra orders the frontier by accumulated distance from the start.
	Dijkstra Algorithm = iota

	// AStar orders the frontier by accumulated distance plus the great-circle
	// distance to the goal.
	AStar
)

// String returns the lowercase wire name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a wire name ("dijkstra", "astar") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "dijkstra":
		return Dijkstra, nil
	case "astar":
		return AStar, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// FrontierEntry is one (priority, node) element of a frontier snapshot.
type FrontierEntry struct {
	// Priority is the heap priority the entry was pushed with: accumulated
	// distance for Dijkstra, distance plus heuristic for A*.
	Priority float64 `json:"priority"`

	// Node is the node ID of the entry.
	Node string `json:"node"`
}

// Step is an immutable record of one solver decision point.
//
// A "visit" step is appended immediately after a node is finalized; an
// "explore" step immediately after a successful distance-map update. Both
// share one strictly increasing counter starting at 1. Every field is a
// snapshot copy taken at creation time, never a reference to live state.
//
// Visited is sorted by node ID; Frontier preserves the internal heap-array
// order of the live frontier at snapshot time (a multiset, including any
// stale lazy-deletion entries).
type Step struct {
	// Number is the 1-based position of the step within the solve call.
	Number int `json:"step_number"`

	// Node is the node being visited, or the node whose neighbor was just
	// explored.
	Node string `json:"current_node"`

	// Visited holds the finalized node set at snapshot time, sorted.
	Visited []string `json:"visited_nodes"`

	// Frontier holds the (priority, node) multiset awaiting processing.
	Frontier []FrontierEntry `json:"frontier_nodes"`

	// Distances maps node ID to its best-known cost; unreached nodes carry
	// math.Inf(1).
	Distances map[string]float64 `json:"distances"`

	// Previous maps node ID to its predecessor on the best-known path.
	Previous map[string]string `json:"previous_nodes"`

	// Description is a human-readable account of the decision.
	Description string `json:"description"`
}
