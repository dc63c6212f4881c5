package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/publish"
	"github.com/studio-site-backend/internal/store"
)

// ErrInvalidState means a post transition was requested that its
// current status does not allow
var ErrInvalidState = errors.New("invalid post state for transition")

// SubmissionService defines the interface for form submission operations
type SubmissionService interface {
	SaveApplication(req *models.ApplicationRequest, files []models.UploadedFileRef) (*models.Submission, error)
	ListSubmissions() ([]models.Submission, error)
	GetSubmission(id string) (*models.Submission, error)
	DeleteSubmission(id string) error
	SaveContact(req *models.ContactRequest) (*models.ContactMessage, error)
	ListContacts() ([]models.ContactMessage, error)
	SaveSignup(req *models.SignupRequest) (*models.EmailSignup, error)
	ListSignups() ([]models.EmailSignup, error)
}

// TrafficService defines the interface for analytics operations
type TrafficService interface {
	Track(req *models.TrackRequest, remoteAddr, userAgent string) error
	Stats(days int) (*models.TrafficStats, error)
}

// BlogService defines the interface for blog post operations
type BlogService interface {
	ListPosts() ([]models.BlogPost, error)
	GetPost(slug string) (*models.BlogPost, error)
	CreatePost(req *models.PostRequest) (*models.BlogPost, error)
	UpdatePost(slug string, req *models.PostRequest) (*models.BlogPost, error)
	DeletePost(slug string) error
	PublishPost(slug string) (*models.BlogPost, error)
	UnpublishPost(slug string) (*models.BlogPost, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(postID string) ([]models.Comment, error)
	AddComment(postID string, req *models.CommentRequest) (*models.Comment, error)
}

// Services holds all service interfaces
type Services struct {
	Submission SubmissionService
	Traffic    TrafficService
	Blog       BlogService
	Comment    CommentService
}

// NewServices creates all services over the shared stores
func NewServices(stores *store.Stores, publisher *publish.Publisher, log zerolog.Logger) *Services {
	return &Services{
		Submission: newSubmissionService(stores, log),
		Traffic:    newTrafficService(stores.Visits, log),
		Blog:       newBlogService(stores.Posts, publisher, log),
		Comment:    newCommentService(stores.Comments, log),
	}
}
