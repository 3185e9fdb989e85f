package route

import (
	"errors"

	"github.com/devu90197/CabDriverAgent/pathfind"
)

// ErrInsufficientWaypoints is returned when a multi-stop request carries
// fewer than two waypoints.
var ErrInsufficientWaypoints = errors.New("route: at least two waypoints required")

// Result is a stitched multi-stop route.
type Result struct {
	// Path is the full node sequence across all segments; junction nodes
	// shared by adjacent segments appear once.
	Path []string `json:"path"`

	// CostKm is the summed segment cost; +Inf when any segment's goal is
	// unreachable.
	CostKm float64 `json:"cost_km"`

	// Steps is the concatenated instrumentation trace of every segment,
	// renumbered so step numbers run 1..N without gaps across segment
	// boundaries.
	Steps []pathfind.Step `json:"steps"`
}
