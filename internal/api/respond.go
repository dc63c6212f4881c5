package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

// fail maps a service/store error onto the response envelope. 500s
// carry the underlying error text; this surface is an internal
// dashboard tool, not a public API.
func fail(c *gin.Context, err error, message string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": verrs.Error(),
			"errors":  verrs,
		})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid identifier"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message + " not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message + " already exists"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": message,
			"error":   err.Error(),
		})
	}
}

// badRequest rejects a malformed body before it reaches a service
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}
