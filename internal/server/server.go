// Package server exposes the routing engine over HTTP.
//
// Small estimate requests are solved inline; requests above the configured
// waypoint threshold (or explicitly marked async) are queued as jobs and
// picked up by the worker pool. Results are polled via the jobs endpoints.
package server

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devu90197/CabDriverAgent/internal/store"
	"github.com/devu90197/CabDriverAgent/internal/worker"
)

// DefaultSyncThreshold is the largest number of intermediate stops solved
// inline; anything above is queued.
const DefaultSyncThreshold = 6

// Server wires the HTTP API to the store and the worker pool.
type Server struct {
	store         *store.Store
	pool          *worker.Pool
	syncThreshold int
	engine        *gin.Engine
}

// New builds the server and registers all routes.
func New(st *store.Store, pool *worker.Pool, syncThreshold int) *Server {
	if syncThreshold <= 0 {
		syncThreshold = DefaultSyncThreshold
	}

	s := &Server{
		store:         st,
		pool:          pool,
		syncThreshold: syncThreshold,
	}

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	r.Use(cors.New(config))

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/routes/estimate", s.handleEstimate)
		v1.POST("/routes/optimize", s.handleOptimize)
		v1.GET("/jobs/:id", s.handleJobStatus)
		v1.GET("/jobs/:id/result", s.handleJobResult)
	}

	s.engine = r
	return s
}

// Handler returns the underlying http.Handler, used by tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	log.Printf("routing API listening on %s", addr)
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
