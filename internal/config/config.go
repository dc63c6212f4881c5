package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Storage configuration
	Storage StorageConfig

	// Dashboard authentication configuration
	Dashboard DashboardConfig

	// Upload configuration
	Upload UploadConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig holds the on-disk layout of the file-backed stores
type StorageConfig struct {
	// DataDir is the root under which every record directory lives
	DataDir string

	// SiteDir holds the static site files served to visitors and
	// packaged by the download endpoint
	SiteDir string
}

// DashboardConfig holds dashboard authentication settings
type DashboardConfig struct {
	Password      string
	SessionSecret string
	SessionName   string
	SessionMaxAge int // in seconds
}

// UploadConfig holds submission file upload settings
type UploadConfig struct {
	MaxUploadSize int64 // in bytes
	UploadDir     string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
			SiteDir: getEnv("SITE_DIR", "./site"),
		},
		Dashboard: DashboardConfig{
			Password:      getEnv("DASHBOARD_PASSWORD", ""),
			SessionSecret: getEnv("SESSION_SECRET", ""),
			SessionName:   getEnv("SESSION_NAME", "dashboard_session"),
			SessionMaxAge: getIntEnv("SESSION_MAX_AGE", 8*3600), // 8 hours
		},
		Upload: UploadConfig{
			MaxUploadSize: getInt64Env("MAX_UPLOAD_SIZE", 20*1024*1024), // 20MB
			UploadDir:     getEnv("UPLOAD_DIR", "./data/uploads"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Dashboard.Password == "" {
		return fmt.Errorf("DASHBOARD_PASSWORD is required")
	}
	if c.Dashboard.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}

// Record directories, all rooted under DataDir.

// SubmissionsDir holds one JSON file per application submission
func (c *StorageConfig) SubmissionsDir() string {
	return filepath.Join(c.DataDir, "submissions")
}

// EmailsDir holds one JSON file per email signup
func (c *StorageConfig) EmailsDir() string {
	return filepath.Join(c.DataDir, "submissions", "emails")
}

// ContactsDir holds one JSON file per contact message
func (c *StorageConfig) ContactsDir() string {
	return filepath.Join(c.DataDir, "submissions", "contacts")
}

// CommentsDir holds one JSON file per post's comment list
func (c *StorageConfig) CommentsDir() string {
	return filepath.Join(c.DataDir, "comments")
}

// BlogDataDir holds one JSON file per blog post, keyed by slug
func (c *StorageConfig) BlogDataDir() string {
	return filepath.Join(c.DataDir, "blog-data")
}

// TrafficDir holds the shared visit log
func (c *StorageConfig) TrafficDir() string {
	return filepath.Join(c.DataDir, "traffic")
}

// BlogHTMLDir holds the generated static pages for published posts
func (c *StorageConfig) BlogHTMLDir() string {
	return filepath.Join(c.SiteDir, "blog")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
