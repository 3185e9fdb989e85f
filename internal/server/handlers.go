package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devu90197/CabDriverAgent/geo"
	"github.com/devu90197/CabDriverAgent/internal/api"
	"github.com/devu90197/CabDriverAgent/internal/store"
	"github.com/devu90197/CabDriverAgent/internal/worker"
	"github.com/devu90197/CabDriverAgent/pathfind"
	"github.com/devu90197/CabDriverAgent/route"
	"github.com/devu90197/CabDriverAgent/tsp"
)

// EstimateRequest asks for a route from pickup to dropoff through the
// optional ordered stops.
type EstimateRequest struct {
	Pickup    geo.Coord   `json:"pickup"`
	Dropoff   geo.Coord   `json:"dropoff"`
	Stops     []geo.Coord `json:"stops"`
	Algorithm string      `json:"algorithm"`
	AsyncMode bool        `json:"async_mode"`
}

// OptimizeRequest asks for a visiting order over unordered stops.
type OptimizeRequest struct {
	Stops []geo.Coord `json:"stops"`
}

func validCoord(c geo.Coord) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validCoord(req.Pickup) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup coordinates"})
		return
	}
	if !validCoord(req.Dropoff) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dropoff coordinates"})
		return
	}
	for i, stop := range req.Stops {
		if !validCoord(stop) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop coordinates at index " + strconv.Itoa(i)})
			return
		}
	}

	if req.Algorithm == "" {
		req.Algorithm = "dijkstra"
	}
	algo, err := pathfind.ParseAlgorithm(req.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := make([]geo.Coord, 0, len(req.Stops)+2)
	coords = append(coords, req.Pickup)
	coords = append(coords, req.Stops...)
	coords = append(coords, req.Dropoff)

	if req.AsyncMode || len(req.Stops) > s.syncThreshold {
		s.queueEstimate(c, req, coords)
		return
	}

	res, err := route.Plan(coords, algo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("route computation failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, api.FromRoute(res))
}

func (s *Server) queueEstimate(c *gin.Context, req EstimateRequest, coords []geo.Coord) {
	jobID := "job_" + uuid.New().String()[:8]

	params, err := json.Marshal(worker.Params{
		Algorithm: req.Algorithm,
		Coords:    coords,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := s.store.CreateJob(ctx, jobID, string(params)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := s.pool.Enqueue(jobID); err != nil {
		log.Printf("server: enqueue %s: %v", jobID, err)
		if ferr := s.store.FailJob(ctx, jobID, err.Error()); ferr != nil {
			log.Printf("server: fail %s: %v", jobID, ferr)
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job queue full"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_id": jobID, "status": "queued"})
}

func (s *Server) handleOptimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Stops) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least two stops required"})
		return
	}
	for i, stop := range req.Stops {
		if !validCoord(stop) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop coordinates at index " + strconv.Itoa(i)})
			return
		}
	}

	ids := make([]string, len(req.Stops))
	coords := make(map[string]geo.Coord, len(req.Stops))
	for i, stop := range req.Stops {
		id := strconv.Itoa(i)
		ids[i] = id
		coords[id] = stop
	}

	res := tsp.Solve(ids, tsp.TableFromCoords(ids, coords))
	c.JSON(http.StatusOK, gin.H{"tour": res.Tour, "cost_km": res.CostKm})
}

func (s *Server) handleJobStatus(c *gin.Context) {
	j, err := s.store.GetJob(c.Request.Context(), c.Param("id"))
	if err == store.ErrJobNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":   j.ID,
		"status":   j.Status,
		"progress": j.Progress,
	})
}

func (s *Server) handleJobResult(c *gin.Context) {
	j, err := s.store.GetJob(c.Request.Context(), c.Param("id"))
	if err == store.ErrJobNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"job_id": j.ID, "status": j.Status}
	if j.Status == store.StatusCompleted {
		resp["result"] = json.RawMessage(j.Result)
	}
	if j.Status == store.StatusFailed {
		resp["error"] = j.Error
	}

	c.JSON(http.StatusOK, resp)
}
