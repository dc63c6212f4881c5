package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
)

// CommentHandler handles public comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/comments/:postId
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Param("postId")
	if !store.ValidateID(postID) {
		badRequest(c, "Invalid post id")
		return
	}

	comments, err := h.services.Comment.ListComments(postID)
	if err != nil {
		fail(c, err, "Error reading comments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(comments), "comments": comments})
}

// AddComment handles POST /api/comments/:postId
func (h *CommentHandler) AddComment(c *gin.Context) {
	postID := c.Param("postId")
	if !store.ValidateID(postID) {
		badRequest(c, "Invalid post id")
		return
	}
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed comment")
		return
	}

	comment, err := h.services.Comment.AddComment(postID, &req)
	if err != nil {
		fail(c, err, "Error saving comment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}
