package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
)

// TrafficHandler handles analytics endpoints
type TrafficHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTrafficHandler creates a new TrafficHandler
func NewTrafficHandler(services *service.Services, log zerolog.Logger) *TrafficHandler {
	return &TrafficHandler{
		services: services,
		log:      log.With().Str("handler", "traffic").Logger(),
	}
}

// TrackVisit handles POST /api/track-visit
func (h *TrafficHandler) TrackVisit(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed visit")
		return
	}

	if err := h.services.Traffic.Track(&req, c.ClientIP(), c.Request.UserAgent()); err != nil {
		fail(c, err, "Error recording visit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats handles GET /api/traffic-stats?days=N
func (h *TrafficHandler) GetStats(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			badRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	stats, err := h.services.Traffic.Stats(days)
	if err != nil {
		fail(c, err, "Error computing traffic stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "days": days, "stats": stats})
}
