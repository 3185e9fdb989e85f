package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devu90197/CabDriverAgent/core"
	"github.com/devu90197/CabDriverAgent/geo"
	"github.com/devu90197/CabDriverAgent/internal/api"
	"github.com/devu90197/CabDriverAgent/internal/store"
)

func setupPool(t *testing.T, workers int) (*Pool, *store.Store) {
	t.Helper()

	st, err := store.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return NewPool(st, workers, 16), st
}

// waitForJob polls until the job leaves the pending/processing states.
func waitForJob(t *testing.T, st *store.Store, id string) *store.Job {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		j, err := st.GetJob(context.Background(), id)
		require.NoError(t, err)
		if j.Status == store.StatusCompleted || j.Status == store.StatusFailed {
			return j
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish", id)
	return nil
}

func seedCityDataset(t *testing.T, st *store.Store) {
	t.Helper()

	nodes := []core.Node{
		{ID: "A", Coord: geo.Coord{Lat: 12.97, Lon: 77.59}},
		{ID: "B", Coord: geo.Coord{Lat: 12.93, Lon: 77.62}},
		{ID: "C", Coord: geo.Coord{Lat: 12.91, Lon: 77.60}},
		{ID: "D", Coord: geo.Coord{Lat: 12.95, Lon: 77.65}},
		{ID: "E", Coord: geo.Coord{Lat: 12.99, Lon: 77.66}},
	}
	edges := []core.Edge{
		{From: "A", To: "B", WeightKm: 4},
		{From: "A", To: "C", WeightKm: 2},
		{From: "B", To: "C", WeightKm: 1},
		{From: "B", To: "D", WeightKm: 5},
		{From: "C", To: "D", WeightKm: 8},
		{From: "C", To: "E", WeightKm: 10},
		{From: "D", To: "E", WeightKm: 2},
	}
	require.NoError(t, st.SaveDataset(context.Background(), "city", nodes, edges))
}

func TestPool_ProcessesDatasetJob(t *testing.T) {
	p, st := setupPool(t, 2)
	ctx := context.Background()
	seedCityDataset(t, st)

	params, _ := json.Marshal(Params{
		Algorithm: "dijkstra",
		Dataset:   "city",
		Waypoints: []string{"A", "E"},
	})
	require.NoError(t, st.CreateJob(ctx, "j1", string(params)))

	p.Start(ctx)
	defer p.Stop()
	require.NoError(t, p.Enqueue("j1"))

	j := waitForJob(t, st, "j1")
	require.Equal(t, store.StatusCompleted, j.Status)
	assert.Equal(t, 100, j.Progress)

	var res api.RouteResult
	require.NoError(t, json.Unmarshal([]byte(j.Result), &res))
	assert.Equal(t, []string{"A", "C", "B", "D", "E"}, res.Path)
	assert.Equal(t, 10.0, res.CostKm)
	assert.NotEmpty(t, res.Steps)
}

func TestPool_ProcessesCoordJob(t *testing.T) {
	p, st := setupPool(t, 1)
	ctx := context.Background()

	params, _ := json.Marshal(Params{
		Algorithm: "astar",
		Coords: []geo.Coord{
			{Lat: 12.9716, Lon: 77.5946},
			{Lat: 12.9352, Lon: 77.6245},
			{Lat: 12.9784, Lon: 77.6408},
		},
	})
	require.NoError(t, st.CreateJob(ctx, "j2", string(params)))

	p.Start(ctx)
	defer p.Stop()
	require.NoError(t, p.Enqueue("j2"))

	j := waitForJob(t, st, "j2")
	require.Equal(t, store.StatusCompleted, j.Status)

	var res api.RouteResult
	require.NoError(t, json.Unmarshal([]byte(j.Result), &res))
	assert.Equal(t, "0", res.Path[0])
	assert.Equal(t, "2", res.Path[len(res.Path)-1])
	assert.Positive(t, res.CostKm)
}

func TestPool_FailsJobOnBadParams(t *testing.T) {
	p, st := setupPool(t, 1)
	ctx := context.Background()

	require.NoError(t, st.CreateJob(ctx, "bad", `{"algorithm":"warp"}`))

	p.Start(ctx)
	defer p.Stop()
	require.NoError(t, p.Enqueue("bad"))

	j := waitForJob(t, st, "bad")
	assert.Equal(t, store.StatusFailed, j.Status)
	assert.Contains(t, j.Error, "unknown algorithm")
}

func TestPool_FailsJobOnMissingDataset(t *testing.T) {
	p, st := setupPool(t, 1)
	ctx := context.Background()

	params, _ := json.Marshal(Params{
		Algorithm: "dijkstra",
		Dataset:   "nowhere",
		Waypoints: []string{"A", "B"},
	})
	require.NoError(t, st.CreateJob(ctx, "missing", string(params)))

	p.Start(ctx)
	defer p.Stop()
	require.NoError(t, p.Enqueue("missing"))

	j := waitForJob(t, st, "missing")
	assert.Equal(t, store.StatusFailed, j.Status)
	assert.Contains(t, j.Error, "dataset not found")
}

func TestPool_RequeuesPendingJobsOnStart(t *testing.T) {
	p, st := setupPool(t, 1)
	ctx := context.Background()
	seedCityDataset(t, st)

	params, _ := json.Marshal(Params{
		Algorithm: "dijkstra",
		Dataset:   "city",
		Waypoints: []string{"A", "C"},
	})
	// Created before Start: simulates a job orphaned by a previous process.
	require.NoError(t, st.CreateJob(ctx, "orphan", string(params)))

	p.Start(ctx)
	defer p.Stop()

	j := waitForJob(t, st, "orphan")
	assert.Equal(t, store.StatusCompleted, j.Status)
}

func TestPool_EnqueueQueueFull(t *testing.T) {
	st, err := store.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	// No workers started: the queue only drains by capacity.
	p := NewPool(st, 0, 1)
	require.NoError(t, p.Enqueue("a"))
	assert.ErrorIs(t, p.Enqueue("b"), ErrQueueFull)
}
