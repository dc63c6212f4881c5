package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /api/blog-posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.services.Blog.ListPosts()
	if err != nil {
		fail(c, err, "Error reading posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(posts), "posts": posts})
}

// GetPost handles GET /api/blog-posts/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	if !store.ValidateID(slug) {
		badRequest(c, "Invalid slug")
		return
	}

	post, err := h.services.Blog.GetPost(slug)
	if err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// CreatePost handles POST /api/blog-posts
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed post")
		return
	}

	post, err := h.services.Blog.CreatePost(&req)
	if err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// UpdatePost handles PUT /api/blog-posts/:slug
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")
	if !store.ValidateID(slug) {
		badRequest(c, "Invalid slug")
		return
	}
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed post")
		return
	}

	post, err := h.services.Blog.UpdatePost(slug, &req)
	if err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// DeletePost handles DELETE /api/blog-posts/:slug
func (h *BlogHandler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")
	if !store.ValidateID(slug) {
		badRequest(c, "Invalid slug")
		return
	}

	if err := h.services.Blog.DeletePost(slug); err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}

// PublishPost handles POST /api/blog-posts/:slug/publish
func (h *BlogHandler) PublishPost(c *gin.Context) {
	slug := c.Param("slug")
	if !store.ValidateID(slug) {
		badRequest(c, "Invalid slug")
		return
	}

	post, err := h.services.Blog.PublishPost(slug)
	if err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// UnpublishPost handles POST /api/blog-posts/:slug/unpublish
func (h *BlogHandler) UnpublishPost(c *gin.Context) {
	slug := c.Param("slug")
	if !store.ValidateID(slug) {
		badRequest(c, "Invalid slug")
		return
	}

	post, err := h.services.Blog.UnpublishPost(slug)
	if err != nil {
		fail(c, err, "Post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}
