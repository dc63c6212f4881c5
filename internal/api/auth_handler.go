package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
)

const sessionAuthKey = "authenticated"

// AuthHandler handles dashboard login and logout
type AuthHandler struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "password is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Dashboard.Password)) != 1 {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("Failed dashboard login")
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAuthKey, true)
	if err := session.Save(); err != nil {
		fail(c, err, "Error saving session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in"})
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		fail(c, err, "Error clearing session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
