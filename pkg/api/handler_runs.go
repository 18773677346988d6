package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ljtill/curate/ent/agentrun"
)

func limitQuery(c *gin.Context, fallback int) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			return n
		}
	}
	return fallback
}

// ListRuns handles GET /api/runs, optionally filtered by stage.
func (s *Server) ListRuns(c *gin.Context) {
	limit := limitQuery(c, 50)

	if stageName := c.Query("stage"); stageName != "" {
		stage := agentrun.Stage(stageName)
		if err := agentrun.StageValidator(stage); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage: " + stageName})
			return
		}
		runs, err := s.runs.ListRecentByStage(c.Request.Context(), stage, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, runs)
		return
	}

	runs, err := s.runs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// ListRunFailures handles GET /api/runs/failures.
func (s *Server) ListRunFailures(c *gin.Context) {
	runs, err := s.runs.ListRecentFailures(c.Request.Context(), limitQuery(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// RunStats handles GET /api/runs/stats: run counts per status.
func (s *Server) RunStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := gin.H{}
	for _, status := range []agentrun.Status{
		agentrun.StatusRunning, agentrun.StatusCompleted, agentrun.StatusFailed,
	} {
		n, err := s.runs.CountByStatus(ctx, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		stats[string(status)] = n
	}
	c.JSON(http.StatusOK, stats)
}

// ListRunsByTrigger handles GET /api/runs/trigger/:id: the run history for
// one link or feedback document, with aggregated token usage.
func (s *Server) ListRunsByTrigger(c *gin.Context) {
	ctx := c.Request.Context()
	triggerID := c.Param("id")

	runs, err := s.runs.ListRunsByTrigger(ctx, triggerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	usage, err := s.runs.AggregateTokenUsage(ctx, triggerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "usage": usage})
}
