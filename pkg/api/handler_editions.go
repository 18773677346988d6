package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEdition handles POST /api/editions.
func (s *Server) CreateEdition(c *gin.Context) {
	e, err := s.store.CreateEdition(c.Request.Context(), uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ListEditions handles GET /api/editions.
func (s *Server) ListEditions(c *gin.Context) {
	editions, err := s.store.ListEditions(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, editions)
}

// GetEdition handles GET /api/editions/:id, with the edition's links and
// revision history inline.
func (s *Server) GetEdition(c *gin.Context) {
	ctx := c.Request.Context()
	e, err := s.store.GetEdition(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "edition not found"})
		return
	}

	links, err := s.store.ListLinksByEdition(ctx, e.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	revisions, err := s.store.ListRevisions(ctx, e.ID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"edition":   e,
		"links":     links,
		"revisions": revisions,
	})
}

// PublishEdition handles POST /api/editions/:id/publish. The command runs in
// the background; the response only acknowledges it.
func (s *Server) PublishEdition(c *gin.Context) {
	editionID := c.Param("id")
	e, err := s.store.GetEdition(c.Request.Context(), editionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "edition not found"})
		return
	}

	go func() {
		if err := s.orchestrator.HandlePublish(context.Background(), editionID); err != nil {
			slog.Error("Publish command failed", "edition_id", editionID, "error", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"edition_id": editionID, "status": "publishing"})
}

// RevertEditionRequest is the body for POST /api/editions/:id/revert.
type RevertEditionRequest struct {
	Sequence int `json:"sequence" binding:"required"`
}

// RevertEdition handles POST /api/editions/:id/revert: restore the edition's
// content to the named revision sequence.
func (s *Server) RevertEdition(c *gin.Context) {
	var req RevertEditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := s.store.RevertEdition(c.Request.Context(), uuid.New().String(), c.Param("id"), req.Sequence)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "edition or revision not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateFeedbackRequest is the body for POST /api/feedback.
type CreateFeedbackRequest struct {
	EditionID         string `json:"edition_id" binding:"required"`
	Section           string `json:"section" binding:"required"`
	Comment           string `json:"comment" binding:"required"`
	LearnFromFeedback *bool  `json:"learn_from_feedback"`
}

// CreateFeedback handles POST /api/feedback. The edit stage picks it up from
// the change feed.
func (s *Server) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	learn := true
	if req.LearnFromFeedback != nil {
		learn = *req.LearnFromFeedback
	}

	f, err := s.store.CreateFeedback(c.Request.Context(), uuid.New().String(), req.EditionID, req.Section, req.Comment, learn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}
