package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
)

// SubmissionHandler handles application, contact, and signup endpoints
type SubmissionHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "submission").Logger(),
	}
}

// SubmitApplication handles POST /api/submit-application
// Accepts multipart form fields plus optional file attachments
func (h *SubmissionHandler) SubmitApplication(c *gin.Context) {
	var req models.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Malformed application form")
		return
	}

	files, err := h.saveUploads(c)
	if err != nil {
		fail(c, err, "Error saving uploaded files")
		return
	}

	submission, err := h.services.Submission.SaveApplication(&req, files)
	if err != nil {
		fail(c, err, "Error saving submission")
		return
	}

	h.log.Info().Str("id", submission.ID).Int("files", len(files)).Msg("Application received")
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Application submitted successfully!",
		"fileName": submission.FileName,
	})
}

// saveUploads stores each attached file under a generated name and
// returns the metadata refs embedded into the submission
func (h *SubmissionHandler) saveUploads(c *gin.Context) ([]models.UploadedFileRef, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body means no attachments
		return nil, nil
	}

	var refs []models.UploadedFileRef
	for _, header := range form.File["files"] {
		if header.Size > h.cfg.Upload.MaxUploadSize {
			return nil, fmt.Errorf("file %s too large, max size is %d MB",
				header.Filename, h.cfg.Upload.MaxUploadSize/(1024*1024))
		}
		ext := filepath.Ext(header.Filename)
		savedName := fmt.Sprintf("upload_%s%s", uuid.New().String()[:8], ext)
		path := filepath.Join(h.cfg.Upload.UploadDir, savedName)
		if err := c.SaveUploadedFile(header, path); err != nil {
			return nil, err
		}
		refs = append(refs, models.UploadedFileRef{
			OriginalName: header.Filename,
			SavedName:    savedName,
			Size:         header.Size,
			Mimetype:     header.Header.Get("Content-Type"),
			Path:         path,
		})
	}
	return refs, nil
}

// ListSubmissions handles GET /api/submissions
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.services.Submission.ListSubmissions()
	if err != nil {
		fail(c, err, "Error reading submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(submissions),
		"submissions": submissions,
	})
}

// GetSubmission handles GET /api/submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidateID(id) {
		badRequest(c, "Invalid submission id")
		return
	}

	submission, err := h.services.Submission.GetSubmission(id)
	if err != nil {
		fail(c, err, "Submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "submission": submission})
}

// DeleteSubmission handles DELETE /api/submissions/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidateID(id) {
		badRequest(c, "Invalid submission id")
		return
	}

	if err := h.services.Submission.DeleteSubmission(id); err != nil {
		fail(c, err, "Submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission deleted successfully"})
}

// Contact handles POST /api/contact
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed contact message")
		return
	}

	if _, err := h.services.Submission.SaveContact(&req); err != nil {
		fail(c, err, "Error saving contact message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message received, we'll be in touch!"})
}

// ListContacts handles GET /api/contact-messages
func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	messages, err := h.services.Submission.ListContacts()
	if err != nil {
		fail(c, err, "Error reading contact messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(messages), "messages": messages})
}

// EmailSignup handles POST /api/email-signup
func (h *SubmissionHandler) EmailSignup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed signup")
		return
	}

	if _, err := h.services.Submission.SaveSignup(&req); err != nil {
		fail(c, err, "Error saving signup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "You're on the list!"})
}

// ListSignups handles GET /api/email-signups
func (h *SubmissionHandler) ListSignups(c *gin.Context) {
	signups, err := h.services.Submission.ListSignups()
	if err != nil {
		fail(c, err, "Error reading signups")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(signups), "signups": signups})
}
