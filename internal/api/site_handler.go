package api

import (
	"archive/zip"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
)

// SiteHandler serves the static site and site-level endpoints
type SiteHandler struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(cfg *config.Config, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		cfg: cfg,
		log: log.With().Str("handler", "site").Logger(),
	}
}

// Health handles GET /api/health
func (h *SiteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Server is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ServeStatic serves site files for any unrouted path, refusing the
// storage directories outright
func (h *SiteHandler) ServeStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		return
	}
	reqPath := c.Request.URL.Path
	if isForbiddenPath(reqPath) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
		return
	}

	// Resolve inside the site root only
	clean := filepath.Clean("/" + reqPath)
	full := filepath.Join(h.cfg.Storage.SiteDir, clean)
	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		return
	}
	c.File(full)
}

// DownloadSite handles GET /api/download-site, streaming the static
// site directory as a ZIP archive
func (h *SiteHandler) DownloadSite(c *gin.Context) {
	root := h.cfg.Storage.SiteDir

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", "attachment; filename=site.zip")

	zw := zip.NewWriter(c.Writer)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		// Headers are already out; all we can do is log and truncate
		h.log.Error().Err(err).Msg("Site archive failed mid-stream")
	}
	if err := zw.Close(); err != nil {
		h.log.Error().Err(err).Msg("Closing site archive failed")
	}
}
