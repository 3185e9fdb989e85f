package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/devu90197/CabDriverAgent/core"
	"github.com/devu90197/CabDriverAgent/geo"
)

// ShortestPath computes the minimum-cost path from start to end using the
// selected algorithm.
//
// Returns:
//
//   - path: ordered node IDs from start to end. When end is unreachable the
//     path degenerates to [start]; check the cost first.
//   - costKm: total path cost, or math.Inf(1) when no path exists.
//   - err: a sentinel from types.go on invalid input.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, start, end string, algo Algorithm) ([]string, float64, error) {
	path, cost, _, err := solve(g, start, end, algo, false)

	return path, cost, err
}

// ShortestPathTraced is ShortestPath plus an ordered step trace. The path and
// cost are identical to the untraced variant for the same input;
// instrumentation is a pure side channel.
//
// Complexity: O((V + E) log V) plus O(V) per recorded step for snapshots.
func ShortestPathTraced(g *core.Graph, start, end string, algo Algorithm) ([]string, float64, []Step, error) {
	return solve(g, start, end, algo, true)
}

// solve validates inputs, runs the shared skeleton, and reconstructs the path.
func solve(g *core.Graph, start, end string, algo Algorithm, traced bool) ([]string, float64, []Step, error) {
	// 1) Validate the graph handle and algorithm selection.
	if g == nil {
		return nil, 0, nil, ErrNilGraph
	}
	if algo != Dijkstra && algo != AStar {
		return nil, 0, nil, ErrUnknownAlgorithm
	}

	// 2) Validate both endpoints exist.
	if !g.HasNode(start) {
		return nil, 0, nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, 0, nil, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}

	// 3) A* needs the goal coordinate before the first heuristic evaluation.
	var goal geo.Coord
	if algo == AStar {
		c, ok := g.Coord(end)
		if !ok {
			return nil, 0, nil, fmt.Errorf("%w: node %q", ErrMissingCoordinates, end)
		}
		goal = c
	}

	// 4) Prepare solver-local state. All maps live only for this call.
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		algo:    algo,
		goalID:  end,
		goal:    goal,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		traced:  traced,
	}
	for _, id := range nodes {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0

	// 5) Seed the frontier with (priority=0, start) and run the main loop.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: start, priority: 0, dist: 0})
	if err := r.process(); err != nil {
		return nil, 0, nil, err
	}

	// 6) Reconstruct the path by walking predecessors backward from the goal.
	path := reconstruct(r.prev, start, end)

	return path, r.dist[end], r.steps, nil
}

// runner holds the mutable state of a single solve invocation. It must not be
// shared across calls or goroutines.
type runner struct {
	g      *core.Graph
	algo   Algorithm
	goalID string
	goal   geo.Coord // valid only when algo == AStar

	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      frontierPQ

	traced    bool
	steps     []Step
	stepCount int
}

// process runs the shared priority-search skeleton until the goal is
// finalized or the frontier empties.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the minimum-priority entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.id

		// 2) Lazy deletion: discard stale entries for finalized nodes.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u and record the visit step.
		r.visited[u] = true
		if r.traced {
			if err := r.recordVisit(u, item); err != nil {
				return err
			}
		}

		// 4) Early exit once the goal is finalized; the remaining frontier
		//    stays undrained.
		if u == r.goalID {
			break
		}

		// 5) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge of u and updates any unvisited neighbor
// whose best-known distance strictly improves, pushing a fresh frontier entry
// per improvement (lazy decrease-key).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("pathfind: neighbors of %q: %w", u, err)
	}

	for _, n := range neighbors {
		if r.visited[n.ID] {
			continue
		}

		candidate := r.dist[u] + n.WeightKm
		if candidate >= r.dist[n.ID] {
			continue // strict improvement only; equal paths keep the first
		}

		r.dist[n.ID] = candidate
		r.prev[n.ID] = u

		priority := candidate
		if r.algo == AStar {
			h, hErr := r.heuristic(n.ID)
			if hErr != nil {
				return hErr
			}
			priority = candidate + h
		}
		heap.Push(&r.pq, &frontierItem{id: n.ID, priority: priority, dist: candidate})

		if r.traced {
			if err = r.recordExplore(u, n.ID, candidate, priority); err != nil {
				return err
			}
		}
	}

	return nil
}

// heuristic returns the great-circle distance from id to the goal.
func (r *runner) heuristic(id string) (float64, error) {
	c, ok := r.g.Coord(id)
	if !ok {
		return 0, fmt.Errorf("%w: node %q", ErrMissingCoordinates, id)
	}

	return geo.Haversine(c, r.goal), nil
}

// recordVisit appends the snapshot taken right after u was finalized.
func (r *runner) recordVisit(u string, item *frontierItem) error {
	var desc string
	if r.algo == AStar {
		h, err := r.heuristic(u)
		if err != nil {
			return err
		}
		desc = fmt.Sprintf(
			"Visiting node %s. Priority: %.2f, Actual distance: %.2f km, Heuristic to goal: %.2f km",
			u, item.priority, item.dist, h,
		)
	} else {
		desc = fmt.Sprintf("Visiting node %s. Current distance: %.2f km", u, item.dist)
	}
	r.appendStep(u, desc)

	return nil
}

// recordExplore appends the snapshot taken right after a successful distance
// update of neighbor v from node u.
func (r *runner) recordExplore(u, v string, distKm, priority float64) error {
	var desc string
	if r.algo == AStar {
		desc = fmt.Sprintf(
			"Exploring neighbor %s from node %s. New distance: %.2f km, Priority: %.2f km",
			v, u, distKm, priority,
		)
	} else {
		desc = fmt.Sprintf("Exploring neighbor %s from node %s. New distance: %.2f km", v, u, distKm)
	}
	r.appendStep(u, desc)

	return nil
}

// appendStep snapshots the live state into an immutable Step. Deep copies
// everywhere: later mutation of the live maps must not leak into history.
func (r *runner) appendStep(node, description string) {
	r.stepCount++

	visited := make([]string, 0, len(r.visited))
	for id := range r.visited {
		visited = append(visited, id)
	}
	sort.Strings(visited)

	frontier := make([]FrontierEntry, len(r.pq))
	for i, it := range r.pq {
		frontier[i] = FrontierEntry{Priority: it.priority, Node: it.id}
	}

	dist := make(map[string]float64, len(r.dist))
	for k, v := range r.dist {
		dist[k] = v
	}
	prev := make(map[string]string, len(r.prev))
	for k, v := range r.prev {
		prev[k] = v
	}

	r.steps = append(r.steps, Step{
		Number:      r.stepCount,
		Node:        node,
		Visited:     visited,
		Frontier:    frontier,
		Distances:   dist,
		Previous:    prev,
		Description: description,
	})
}

// reconstruct walks the predecessor map backward from end, appends start, and
// reverses. When no predecessor chain reaches end the result degenerates to
// [start]; the caller distinguishes via the infinite cost.
func reconstruct(prev map[string]string, start, end string) []string {
	path := make([]string, 0, 8)
	for cur := end; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, cur)
		cur = p
	}
	path = append(path, start)

	// Reverse in place: predecessors were collected goal-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is one lazy-deletion heap entry: the node, the priority it was
// pushed with, and the accumulated distance at push time (equal to priority
// for Dijkstra; priority minus heuristic for A*).
type frontierItem struct {
	id       string
	priority float64
	dist     float64
}

// frontierPQ is a min-heap of *frontierItem ordered by priority, with ties
// broken by node ID so pop order is fully deterministic.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].id < pq[j].id
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
