// Package route orchestrates multi-stop journeys over a road graph.
//
// # Overview
//
// A multi-stop request visits an ordered list of waypoints. The orchestrator
// decomposes it into consecutive-pair shortest-path problems, solves each
// with the requested algorithm (pathfind.Dijkstra or pathfind.AStar), and
// stitches the segment paths into one route: the shared junction node between
// adjacent segments appears once, costs are summed, and the per-segment
// instrumentation steps are concatenated with a single continuous numbering.
//
// Plan is the coordinate-level entry point: it synthesizes a k-nearest-
// neighbor road graph from raw waypoint coordinates (core.BuildKNN with
// core.DefaultKNN) and then runs SolveMultiStop over it.
//
// # Unreachable segments
//
// A segment whose goal cannot be reached contributes +Inf to the total cost;
// the stitched path still carries whatever each segment produced, so callers
// detect infeasibility by inspecting CostKm, not by an error.
//
// # Errors
//
//   - ErrInsufficientWaypoints: fewer than two waypoints were supplied.
//   - errors from pathfind (unknown node, missing coordinates) pass through
//     wrapped with the failing segment's endpoints.
//
// # Complexity
//
// m-1 shortest-path solves for m waypoints; each solve is
// O((V+E) log V) on the underlying graph.
package route
