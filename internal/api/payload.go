// Package api defines the JSON wire payloads shared by the HTTP server and
// the background worker.
//
// The routing core reports unreachable goals and unsettled nodes as ±Inf,
// which encoding/json refuses to marshal. Payload conversion substitutes the
// finite sentinel UnreachableCost (±999999.0) so clients receive plain
// numbers and can still detect infeasible routes.
package api

import (
	"math"

	"github.com/devu90197/CabDriverAgent/pathfind"
	"github.com/devu90197/CabDriverAgent/route"
)

// UnreachableCost replaces +Inf in wire payloads; -UnreachableCost replaces
// -Inf.
const UnreachableCost = 999999.0

// FrontierEntry is a (priority, node) pair awaiting expansion.
type FrontierEntry struct {
	Priority float64 `json:"priority"`
	Node     string  `json:"node"`
}

// Step is the wire form of one algorithm step.
type Step struct {
	StepNumber    int                `json:"step_number"`
	CurrentNode   string             `json:"current_node"`
	VisitedNodes  []string           `json:"visited_nodes"`
	FrontierNodes []FrontierEntry    `json:"frontier_nodes"`
	Distances     map[string]float64 `json:"distances"`
	PreviousNodes map[string]string  `json:"previous_nodes"`
	Description   string             `json:"description"`
}

// RouteResult is the wire form of a solved route.
type RouteResult struct {
	Path   []string `json:"path"`
	CostKm float64  `json:"cost_km"`
	Steps  []Step   `json:"steps"`
}

// FromRoute converts a solved route into its wire form, sanitizing every
// infinite value.
func FromRoute(r route.Result) RouteResult {
	out := RouteResult{
		Path:   r.Path,
		CostKm: finite(r.CostKm),
		Steps:  make([]Step, 0, len(r.Steps)),
	}
	for _, s := range r.Steps {
		out.Steps = append(out.Steps, fromStep(s))
	}

	return out
}

func fromStep(s pathfind.Step) Step {
	w := Step{
		StepNumber:    s.Number,
		CurrentNode:   s.Node,
		VisitedNodes:  s.Visited,
		FrontierNodes: make([]FrontierEntry, 0, len(s.Frontier)),
		Distances:     make(map[string]float64, len(s.Distances)),
		PreviousNodes: s.Previous,
		Description:   s.Description,
	}
	for _, f := range s.Frontier {
		w.FrontierNodes = append(w.FrontierNodes, FrontierEntry{
			Priority: finite(f.Priority),
			Node:     f.Node,
		})
	}
	for k, v := range s.Distances {
		w.Distances[k] = finite(v)
	}

	return w
}

// finite maps ±Inf to ±UnreachableCost and passes every other value through.
func finite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return UnreachableCost
	case math.IsInf(v, -1):
		return -UnreachableCost
	default:
		return v
	}
}
