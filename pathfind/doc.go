// Package pathfind implements single-pair shortest-path search on weighted
// road graphs: Dijkstra's algorithm and A*, sharing one priority-search
// skeleton and differing only in the frontier priority function.
//
// Overview:
//
//   - Dijkstra orders the frontier by accumulated distance from the start.
//   - A* orders it by accumulated distance plus the great-circle distance to
//     the goal (geo.Haversine), an admissible heuristic whenever edge weights
//     are real travel distances ≥ straight-line distance.
//   - Both use a lazy-deletion min-heap: stale entries stay in the frontier
//     and are discarded on pop via the visited set, instead of decrease-key.
//   - Search stops as soon as the goal is finalized (early exit); the
//     remaining frontier is not drained.
//
// Tracing:
//
//   - ShortestPathTraced additionally returns an ordered []Step, one record
//     per decision point: a "visit" step right after a node is finalized and
//     an "explore" step after every successful distance update. Both kinds
//     share a single strictly-increasing counter starting at 1, interleaved
//     in real execution order, so a visualization can replay the search frame
//     by frame. Each Step is a deep-copied snapshot; replaying later
//     reproduces exact historical state even though the live maps mutate.
//   - Tracing is a pure side channel: ShortestPath and ShortestPathTraced
//     return identical paths and costs for the same input.
//
// Unreachable goals:
//
//   - No error is raised. The returned cost is +Inf and the returned path is
//     the degenerate single-node chain [start] (the predecessor walk from the
//     goal finds no chain). Callers must treat math.IsInf(cost, 1) as
//     "no path" and must not trust the path in that case.
//
// Determinism:
//
//   - Neighbor relaxation follows core's sorted Neighbors order and equal
//     frontier priorities are broken by node ID, so identical inputs always
//     produce identical paths, costs, and step traces.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per solve; A* typically visits fewer nodes.
//   - Space: O(V + E) for maps and the lazy frontier; traced runs additionally
//     hold O(steps · V) for snapshots.
//
// Errors (sentinel):
//
//	ErrNilGraph            — the graph is nil.
//	ErrNodeNotFound        — start or end is absent from the graph.
//	ErrMissingCoordinates  — A* requested but a node lacks a coordinate.
//	ErrUnknownAlgorithm    — the Algorithm value is not Dijkstra or AStar.
//
// Dijkstra never needs coordinates; ErrMissingCoordinates can only occur
// when AStar is requested.
package pathfind
