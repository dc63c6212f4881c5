package models

import (
	"time"
)

// EmailSignup represents one newsletter signup
type EmailSignup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email"`
	Source      string    `json:"source"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SignupRequest is the allow-listed field mapping for the signup form
type SignupRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Source string `json:"source"`
}
