// Package cabrouting is a deterministic routing engine for cab trips:
// geographic distance, weighted road graphs, instrumented shortest-path
// search, and multi-stop tour heuristics, served over an HTTP job API.
//
// Everything is organized under focused subpackages:
//
//	geo/      — great-circle (haversine) distance over decimal-degree coordinates
//	core/     — weighted road graph, bulk construction, k-nearest-neighbor synthesis
//	pathfind/ — Dijkstra & A* sharing one search skeleton, with optional step traces
//	tsp/      — nearest-neighbor tour construction + first-improvement 2-opt
//	route/    — multi-stop orchestration: segment solving, stitching, step renumbering
//	cmd/      — the cabrouted server binary (HTTP API, job queue, SQLite store)
//
// Quick ASCII example:
//
//	    A───4───B
//	    │      ╱│
//	    2    1  5
//	    │  ╱    │
//	    C───8───D───2───E
//
//	Dijkstra(A→E) follows A→C→B→D→E for a total of 10 km.
//
// Every library algorithm is deterministic: equal inputs yield identical
// paths, costs, tours, and traces regardless of map iteration order.
package cabrouting
