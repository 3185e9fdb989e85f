// Package tsp approximates the Travelling Salesman Problem for unordered
// multi-stop routes: nearest-neighbor construction followed by 2-opt
// first-improvement local search.
//
// Overview:
//
//   - NearestNeighbor builds an initial closed tour: starting from the first
//     node of the input, repeatedly hop to the nearest unvisited node, then
//     return to the start. Ties are broken by input iteration order: the
//     first minimal value encountered wins.
//   - TwoOpt improves a closed tour by reversing segments: the scan accepts
//     the first strictly improving reversal, restarts from the top, and
//     terminates when a full pass finds no improvement (first-improvement,
//     deliberately not best-improvement; the strategy changes which local
//     optima are reachable and is observable in tests).
//   - Solve chains the two: NearestNeighbor then TwoOpt. The 2-opt cost is
//     never above the nearest-neighbor cost.
//
// Distances:
//
//   - DistTable maps ordered node pairs to kilometers. A missing pair is
//     treated as +Inf: the hop is effectively forbidden, never an error.
//
// Degenerate input:
//
//   - An empty or single-node input returns a trivial zero-cost tour rather
//     than an error. Tours of two or more nodes are closed loops: the first
//     node is repeated at the end.
//
// Bounds:
//
//   - 2-opt is O(n²) per pass with an unbounded pass count in the worst case.
//     The package imposes no budget of its own; callers must cap input size
//     or wall-clock time (the service layer rejects large waypoint counts
//     upstream).
//
// Complexity:
//
//   - NearestNeighbor: O(n²) time, O(n) space.
//   - TwoOpt: O(passes · n² · n) time with full cost recomputation per
//     candidate, O(n) space.
package tsp
