package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studio-site-backend/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface over a list of field errors
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = fmt.Sprintf("%s: %s", ve.Field, ve.Message)
	}
	return strings.Join(parts, "; ")
}

// ValidateApplication validates a lead-generation application payload
func ValidateApplication(req *models.ApplicationRequest) Errors {
	var errors Errors

	if strings.TrimSpace(req.BusinessName) == "" {
		errors = append(errors, ValidationError{Field: "businessName", Message: "businessName is required"})
	}
	if strings.TrimSpace(req.FullName) == "" {
		errors = append(errors, ValidationError{Field: "fullName", Message: "fullName is required"})
	}
	errors = append(errors, requireEmail(req.Email)...)
	if strings.TrimSpace(req.Phone) == "" {
		errors = append(errors, ValidationError{Field: "phone", Message: "phone is required"})
	}
	if strings.TrimSpace(req.Industry) == "" {
		errors = append(errors, ValidationError{Field: "industry", Message: "industry is required"})
	}

	return errors
}

// ValidateContact validates a contact-form payload
func ValidateContact(req *models.ContactRequest) Errors {
	var errors Errors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	errors = append(errors, requireEmail(req.Email)...)
	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, ValidationError{Field: "message", Message: "message is required"})
	}

	return errors
}

// ValidateSignup validates an email-signup payload
func ValidateSignup(req *models.SignupRequest) Errors {
	return requireEmail(req.Email)
}

// ValidatePost validates a blog post create/update payload
func ValidatePost(req *models.PostRequest) Errors {
	var errors Errors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	return errors
}

// ValidateComment validates a comment payload
func ValidateComment(req *models.CommentRequest) Errors {
	var errors Errors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, ValidationError{Field: "text", Message: "text is required"})
	} else if words := len(strings.Fields(req.Text)); words > models.MaxCommentWords {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text exceeds maximum of %d words (has %d)", models.MaxCommentWords, words),
		})
	}

	return errors
}

func requireEmail(email string) Errors {
	if email == "" {
		return Errors{{Field: "email", Message: "email is required"}}
	}
	if !emailRegex.MatchString(email) {
		return Errors{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}
