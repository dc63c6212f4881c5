package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
	"github.com/studio-site-backend/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	sessionStore := cookie.NewStore([]byte(cfg.Dashboard.SessionSecret))
	sessionStore.Options(sessions.Options{HttpOnly: true, MaxAge: cfg.Dashboard.SessionMaxAge, Path: "/"})
	router.Use(sessions.Sessions(cfg.Dashboard.SessionName, sessionStore))

	// Handlers
	authHandler := NewAuthHandler(cfg, log)
	submissionHandler := NewSubmissionHandler(services, cfg, log)
	trafficHandler := NewTrafficHandler(services, log)
	blogHandler := NewBlogHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	siteHandler := NewSiteHandler(cfg, log)

	api := router.Group("/api")
	{
		// Public endpoints
		api.GET("/health", siteHandler.Health)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.POST("/submit-application", submissionHandler.SubmitApplication)
		api.POST("/contact", submissionHandler.Contact)
		api.POST("/email-signup", submissionHandler.EmailSignup)
		api.POST("/track-visit", trafficHandler.TrackVisit)
		api.GET("/comments/:postId", commentHandler.ListComments)
		api.POST("/comments/:postId", commentHandler.AddComment)

		// Dashboard endpoints
		dashboard := api.Group("")
		dashboard.Use(requireDashboard())
		{
			dashboard.GET("/submissions", submissionHandler.ListSubmissions)
			dashboard.GET("/submissions/:id", submissionHandler.GetSubmission)
			dashboard.DELETE("/submissions/:id", submissionHandler.DeleteSubmission)
			dashboard.GET("/email-signups", submissionHandler.ListSignups)
			dashboard.GET("/contact-messages", submissionHandler.ListContacts)
			dashboard.GET("/traffic-stats", trafficHandler.GetStats)
			dashboard.GET("/blog-posts", blogHandler.ListPosts)
			dashboard.GET("/blog-posts/:slug", blogHandler.GetPost)
			dashboard.POST("/blog-posts", blogHandler.CreatePost)
			dashboard.PUT("/blog-posts/:slug", blogHandler.UpdatePost)
			dashboard.DELETE("/blog-posts/:slug", blogHandler.DeletePost)
			dashboard.POST("/blog-posts/:slug/publish", blogHandler.PublishPost)
			dashboard.POST("/blog-posts/:slug/unpublish", blogHandler.UnpublishPost)
			dashboard.GET("/download-site", siteHandler.DownloadSite)
		}
	}

	// Everything else is the static site, with the storage directories
	// walled off from direct access
	router.NoRoute(siteHandler.ServeStatic)

	return router
}

// requireDashboard rejects requests without an authenticated session
func requireDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if auth, ok := session.Get(sessionAuthKey).(bool); !ok || !auth {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// forbiddenPrefixes are request paths that map onto storage
// directories and must never be served directly
var forbiddenPrefixes = []string{"/data", "/submissions", "/comments", "/blog-data", "/traffic", "/uploads"}

func isForbiddenPath(path string) bool {
	for _, prefix := range forbiddenPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
