// Package geo provides great-circle distance primitives for the routing engine.
//
// Overview:
//
//   - Coord is an immutable (latitude, longitude) value in decimal degrees.
//   - Haversine computes the great-circle distance between two coordinates in
//     kilometers, assuming a spherical Earth of radius 6371 km.
//
// When to use:
//
//   - As the edge-weight source when building road graphs from raw coordinates
//     (see core.BuildKNN).
//   - As the admissible heuristic for A* (see pathfind): the straight-line
//     great-circle distance never exceeds the true remaining road distance
//     whenever edge weights are real travel distances.
//
// Guarantees:
//
//   - Haversine(a, a) == 0 exactly (the formula degenerates to asin(0)).
//   - Haversine(a, b) == Haversine(b, a) to floating-point precision.
//   - No error conditions: out-of-range coordinates are the caller's
//     responsibility and are validated at the API boundary, not here.
//
// Complexity: O(1) time, zero allocations per call.
package geo
