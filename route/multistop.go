package route

import (
	"fmt"

	"github.com/devu90197/CabDriverAgent/core"
	"github.com/devu90197/CabDriverAgent/pathfind"
)

// SolveMultiStop routes through waypoints in the given order, solving each
// consecutive pair with algo and stitching the segments.
//
// Segment paths share their junction node: segment k ends where segment k+1
// begins, and the duplicate is dropped when appending. Segment costs are
// summed; an unreachable segment goal contributes +Inf. Steps from all
// segments are concatenated and renumbered continuously from 1.
func SolveMultiStop(g *core.Graph, waypoints []string, algo pathfind.Algorithm) (Result, error) {
	if len(waypoints) < 2 {
		return Result{}, ErrInsufficientWaypoints
	}

	var res Result
	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]

		path, cost, steps, err := pathfind.ShortestPathTraced(g, from, to, algo)
		if err != nil {
			return Result{}, fmt.Errorf("segment %s->%s: %w", from, to, err)
		}

		// 1) Stitch the path, dropping the duplicate junction node.
		if i == 0 {
			res.Path = append(res.Path, path...)
		} else {
			res.Path = append(res.Path, path[1:]...)
		}

		// 2) Accumulate cost; +Inf propagates through the sum.
		res.CostKm += cost

		// 3) Renumber steps continuously across segments.
		base := len(res.Steps)
		for _, s := range steps {
			s.Number = base + s.Number
			res.Steps = append(res.Steps, s)
		}
	}

	return res, nil
}
