// Package worker processes queued route jobs in the background.
//
// A Pool owns a bounded job queue and a fixed set of goroutines. The HTTP
// layer enqueues job IDs; workers load the job's parameters from the store,
// run the route orchestrator, and persist the sanitized result. Failures are
// recorded on the job, never retried.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/devu90197/CabDriverAgent/geo"
	"github.com/devu90197/CabDriverAgent/internal/api"
	"github.com/devu90197/CabDriverAgent/internal/store"
	"github.com/devu90197/CabDriverAgent/pathfind"
	"github.com/devu90197/CabDriverAgent/route"
)

// ErrQueueFull is returned by Enqueue when the job queue is at capacity.
var ErrQueueFull = errors.New("worker: job queue full")

// Params describes one route job. Either Coords (a raw waypoint list routed
// over a synthesized k-nearest-neighbor graph) or Dataset+Waypoints (node IDs
// routed over a stored road network) must be set; Coords wins when both are.
type Params struct {
	Algorithm string      `json:"algorithm"`
	Coords    []geo.Coord `json:"coords,omitempty"`
	Dataset   string      `json:"dataset,omitempty"`
	Waypoints []string    `json:"waypoints,omitempty"`
}

// Pool is a fixed-size background worker pool over a shared store.
type Pool struct {
	store   *store.Store
	jobs    chan string
	workers int
	wg      sync.WaitGroup
}

// NewPool sizes the pool. workers goroutines consume from a queue of
// queueDepth pending job IDs.
func NewPool(st *store.Store, workers, queueDepth int) *Pool {
	return &Pool{
		store:   st,
		jobs:    make(chan string, queueDepth),
		workers: workers,
	}
}

// Start requeues jobs left pending by a previous process, then launches the
// worker goroutines. Workers exit when ctx is canceled or Stop is called.
func (p *Pool) Start(ctx context.Context) {
	if ids, err := p.store.ListPending(ctx); err != nil {
		log.Printf("worker: failed to requeue pending jobs: %v", err)
	} else {
		for _, id := range ids {
			if err := p.Enqueue(id); err != nil {
				log.Printf("worker: dropping pending job %s: %v", id, err)
			}
		}
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case id, ok := <-p.jobs:
					if !ok {
						return
					}
					p.process(ctx, id)
				}
			}
		}()
	}
}

// Enqueue hands a job ID to the pool without blocking.
func (p *Pool) Enqueue(id string) error {
	select {
	case p.jobs <- id:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pool) process(ctx context.Context, id string) {
	job, err := p.store.GetJob(ctx, id)
	if err != nil {
		log.Printf("worker: job %s: %v", id, err)
		return
	}

	if err := p.store.SetProgress(ctx, id, 10); err != nil {
		log.Printf("worker: job %s: %v", id, err)
		return
	}

	res, err := p.run(ctx, job.Params)
	if err != nil {
		if ferr := p.store.FailJob(ctx, id, err.Error()); ferr != nil {
			log.Printf("worker: job %s: %v", id, ferr)
		}
		return
	}

	payload, err := json.Marshal(api.FromRoute(res))
	if err != nil {
		if ferr := p.store.FailJob(ctx, id, err.Error()); ferr != nil {
			log.Printf("worker: job %s: %v", id, ferr)
		}
		return
	}

	if err := p.store.CompleteJob(ctx, id, string(payload)); err != nil {
		log.Printf("worker: job %s: %v", id, err)
	}
}

// run executes the route described by the job's JSON params.
func (p *Pool) run(ctx context.Context, rawParams string) (route.Result, error) {
	var params Params
	if err := json.Unmarshal([]byte(rawParams), &params); err != nil {
		return route.Result{}, fmt.Errorf("invalid job params: %w", err)
	}

	name := params.Algorithm
	if name == "" {
		name = "dijkstra"
	}
	algo, err := pathfind.ParseAlgorithm(name)
	if err != nil {
		return route.Result{}, err
	}

	if len(params.Coords) > 0 {
		return route.Plan(params.Coords, algo)
	}

	g, err := p.store.LoadGraph(ctx, params.Dataset)
	if err != nil {
		return route.Result{}, err
	}

	return route.SolveMultiStop(g, params.Waypoints, algo)
}
