// Package api is the HTTP front-end: CRUD for links, editions, and feedback,
// the agent-run query surface, and the SSE event stream.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ljtill/curate/pkg/database"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/pipeline"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

// Server holds the HTTP layer's collaborators.
type Server struct {
	db           *database.Client
	store        *store.Store
	runs         *services.RunService
	events       *events.Manager
	orchestrator *pipeline.Orchestrator
	pingInterval time.Duration
}

// NewServer creates the API server.
func NewServer(db *database.Client, s *store.Store, runs *services.RunService, m *events.Manager, orch *pipeline.Orchestrator, pingInterval time.Duration) *Server {
	return &Server{
		db:           db,
		store:        s,
		runs:         runs,
		events:       m,
		orchestrator: orch,
		pingInterval: pingInterval,
	}
}

// Routes registers all endpoints on the engine.
func (s *Server) Routes(r *gin.Engine) {
	r.GET("/healthz", s.Health)
	r.GET("/events", s.StreamEvents)

	api := r.Group("/api")
	{
		api.POST("/links", s.CreateLink)
		api.GET("/links", s.ListLinks)
		api.GET("/links/:id", s.GetLink)
		api.DELETE("/links/:id", s.DeleteLink)

		api.POST("/editions", s.CreateEdition)
		api.GET("/editions", s.ListEditions)
		api.GET("/editions/:id", s.GetEdition)
		api.POST("/editions/:id/publish", s.PublishEdition)
		api.POST("/editions/:id/revert", s.RevertEdition)

		api.POST("/feedback", s.CreateFeedback)

		api.GET("/runs", s.ListRuns)
		api.GET("/runs/failures", s.ListRunFailures)
		api.GET("/runs/stats", s.RunStats)
		api.GET("/runs/trigger/:id", s.ListRunsByTrigger)
	}
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
