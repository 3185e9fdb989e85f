package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devu90197/CabDriverAgent/geo"
	"github.com/devu90197/CabDriverAgent/internal/api"
	"github.com/devu90197/CabDriverAgent/internal/store"
	"github.com/devu90197/CabDriverAgent/internal/worker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st, err := store.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	pool := worker.NewPool(st, 1, 16)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	return New(st, pool, DefaultSyncThreshold), st
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	return w
}

func TestHealth(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestEstimate_Sync(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/estimate", EstimateRequest{
		Pickup:  pickupCoord(),
		Dropoff: dropoffCoord(),
		Stops:   stopCoords(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res api.RouteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "0", res.Path[0])
	assert.Equal(t, "3", res.Path[len(res.Path)-1])
	assert.Positive(t, res.CostKm)
	assert.NotEmpty(t, res.Steps)
}

func TestEstimate_InvalidCoordinates(t *testing.T) {
	s, _ := setupServer(t)

	req := EstimateRequest{Pickup: pickupCoord(), Dropoff: dropoffCoord()}
	req.Pickup.Lat = 91

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/estimate", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pickup coordinates")
}

func TestEstimate_UnknownAlgorithm(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/estimate", EstimateRequest{
		Pickup:    pickupCoord(),
		Dropoff:   dropoffCoord(),
		Algorithm: "warp",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown algorithm")
}

func TestEstimate_AsyncRoundTrip(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/estimate", EstimateRequest{
		Pickup:    pickupCoord(),
		Dropoff:   dropoffCoord(),
		Stops:     stopCoords(),
		AsyncMode: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var queued struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queued))
	assert.Equal(t, "queued", queued.Status)
	require.NotEmpty(t, queued.JobID)

	// Poll the status endpoint until the worker finishes.
	deadline := time.Now().Add(5 * time.Second)
	var status struct {
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	}
	for time.Now().Before(deadline) {
		w = doJSON(t, s, http.MethodGet, "/api/v1/jobs/"+queued.JobID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		if status.Status == store.StatusCompleted || status.Status == store.StatusFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, store.StatusCompleted, status.Status)
	assert.Equal(t, 100, status.Progress)

	w = doJSON(t, s, http.MethodGet, "/api/v1/jobs/"+queued.JobID+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		JobID  string          `json:"job_id"`
		Status string          `json:"status"`
		Result api.RouteResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, queued.JobID, result.JobID)
	assert.Equal(t, "0", result.Result.Path[0])
	assert.Positive(t, result.Result.CostKm)
}

func TestJobStatus_NotFound(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/jobs/nope/result", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOptimize(t *testing.T) {
	s, _ := setupServer(t)

	stops := append([]geo.Coord{pickupCoord()}, stopCoords()...)
	stops = append(stops, dropoffCoord())

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/optimize", OptimizeRequest{Stops: stops})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Tour   []string `json:"tour"`
		CostKm float64  `json:"cost_km"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Tour, len(stops)+1)
	assert.Equal(t, res.Tour[0], res.Tour[len(res.Tour)-1])
	assert.Positive(t, res.CostKm)
}

func TestOptimize_TooFewStops(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/routes/optimize", OptimizeRequest{
		Stops: []geo.Coord{pickupCoord()},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Bangalore-area fixture coordinates.
func pickupCoord() geo.Coord  { return geo.Coord{Lat: 12.9716, Lon: 77.5946} }
func dropoffCoord() geo.Coord { return geo.Coord{Lat: 12.9141, Lon: 77.6411} }

func stopCoords() []geo.Coord {
	return []geo.Coord{
		{Lat: 12.9352, Lon: 77.6245},
		{Lat: 12.9784, Lon: 77.6408},
	}
}
