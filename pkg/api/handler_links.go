package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateLinkRequest is the body for POST /api/links.
type CreateLinkRequest struct {
	URL       string `json:"url" binding:"required"`
	Title     string `json:"title"`
	EditionID string `json:"edition_id"`
}

// CreateLink handles POST /api/links. The pipeline picks the link up from
// the change feed; no processing happens on this request path.
func (s *Server) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var title, editionID *string
	if req.Title != "" {
		title = &req.Title
	}
	if req.EditionID != "" {
		editionID = &req.EditionID
	}

	l, err := s.store.CreateLink(c.Request.Context(), uuid.New().String(), req.URL, title, editionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, l)
}

// ListLinks handles GET /api/links.
func (s *Server) ListLinks(c *gin.Context) {
	links, err := s.store.ListLinks(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}

// GetLink handles GET /api/links/:id.
func (s *Server) GetLink(c *gin.Context) {
	l, err := s.store.GetLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if l == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// DeleteLink handles DELETE /api/links/:id. Soft delete; the link vanishes
// from all reads.
func (s *Server) DeleteLink(c *gin.Context) {
	if err := s.store.SoftDeleteLink(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
