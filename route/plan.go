package route

import (
	"strconv"

	"github.com/devu90197/CabDriverAgent/core"
	"github.com/devu90197/CabDriverAgent/geo"
	"github.com/devu90197/CabDriverAgent/pathfind"
)

// Plan routes through raw waypoint coordinates in the given order.
//
// Waypoints are named by their index ("0", "1", ...), connected into a
// k-nearest-neighbor road graph (core.BuildKNN with core.DefaultKNN), and
// solved with SolveMultiStop. The KNN graph approximates a road network:
// far-apart waypoints may route through intermediate ones, so the stitched
// path can be longer than the waypoint list.
func Plan(coords []geo.Coord, algo pathfind.Algorithm) (Result, error) {
	if len(coords) < 2 {
		return Result{}, ErrInsufficientWaypoints
	}

	nodes := make([]core.Node, len(coords))
	waypoints := make([]string, len(coords))
	for i, c := range coords {
		id := strconv.Itoa(i)
		nodes[i] = core.Node{ID: id, Coord: c}
		waypoints[i] = id
	}

	k := core.DefaultKNN
	if k > len(nodes)-1 {
		k = len(nodes) - 1
	}

	g, err := core.BuildKNN(nodes, k)
	if err != nil {
		return Result{}, err
	}

	return SolveMultiStop(g, waypoints, algo)
}
