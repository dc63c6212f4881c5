package models

import (
	"time"
)

// Submission represents one lead-generation application, stored as a
// single JSON file in the submissions directory
type Submission struct {
	ID              string            `json:"id"`
	FileName        string            `json:"fileName,omitempty"`
	BusinessName    string            `json:"businessName"`
	FullName        string            `json:"fullName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Industry        string            `json:"industry"`
	Website         string            `json:"website,omitempty"`
	EmployeeCount   string            `json:"employeeCount,omitempty"`
	ServiceInterest string            `json:"serviceInterest,omitempty"`
	Files           []UploadedFileRef `json:"files,omitempty"`
	SubmittedAt     time.Time         `json:"submittedAt"`
	SubmittedDate   string            `json:"submittedDate"`
}

// UploadedFileRef is metadata for one uploaded attachment; the bytes
// themselves live in the upload directory
type UploadedFileRef struct {
	OriginalName string `json:"originalName"`
	SavedName    string `json:"savedName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
	Path         string `json:"path"`
}

// ApplicationRequest is the allow-listed field mapping for the public
// application form. Only these fields ever reach a stored Submission.
type ApplicationRequest struct {
	BusinessName    string `form:"businessName" json:"businessName"`
	FullName        string `form:"fullName" json:"fullName"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone" json:"phone"`
	Industry        string `form:"industry" json:"industry"`
	Website         string `form:"website" json:"website"`
	EmployeeCount   string `form:"employeeCount" json:"employeeCount"`
	ServiceInterest string `form:"serviceInterest" json:"serviceInterest"`
}
