package mocks

import (
	"fmt"
	"strconv"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
)

// MockSubmissionService is a mock implementation of SubmissionService
type MockSubmissionService struct {
	SaveApplicationFunc func(req *models.ApplicationRequest, files []models.UploadedFileRef) (*models.Submission, error)
	Submissions         map[string]*models.Submission
	Contacts            []*models.ContactMessage
	Signups             []*models.EmailSignup
}

// Verify interface compliance
var _ service.SubmissionService = (*MockSubmissionService)(nil)

func NewMockSubmissionService() *MockSubmissionService {
	return &MockSubmissionService{
		Submissions: make(map[string]*models.Submission),
	}
}

func (m *MockSubmissionService) SaveApplication(req *models.ApplicationRequest, files []models.UploadedFileRef) (*models.Submission, error) {
	if m.SaveApplicationFunc != nil {
		return m.SaveApplicationFunc(req, files)
	}
	sub := &models.Submission{
		ID:           fmt.Sprintf("sub-%d", len(m.Submissions)+1),
		BusinessName: req.BusinessName,
		FullName:     req.FullName,
		Email:        req.Email,
		Files:        files,
	}
	sub.FileName = sub.ID + ".json"
	m.Submissions[sub.ID] = sub
	return sub, nil
}

func (m *MockSubmissionService) ListSubmissions() ([]models.Submission, error) {
	out := make([]models.Submission, 0, len(m.Submissions))
	for _, s := range m.Submissions {
		out = append(out, *s)
	}
	return out, nil
}

func (m *MockSubmissionService) GetSubmission(id string) (*models.Submission, error) {
	if s, ok := m.Submissions[id]; ok {
		return s, nil
	}
	return nil, store.ErrNotFound
}

func (m *MockSubmissionService) DeleteSubmission(id string) error {
	if _, ok := m.Submissions[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.Submissions, id)
	return nil
}

func (m *MockSubmissionService) SaveContact(req *models.ContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:    fmt.Sprintf("contact-%d", len(m.Contacts)+1),
		Name:  req.Name,
		Email: req.Email,
	}
	m.Contacts = append(m.Contacts, msg)
	return msg, nil
}

func (m *MockSubmissionService) ListContacts() ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(m.Contacts))
	for _, c := range m.Contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MockSubmissionService) SaveSignup(req *models.SignupRequest) (*models.EmailSignup, error) {
	su := &models.EmailSignup{
		ID:    fmt.Sprintf("signup-%d", len(m.Signups)+1),
		Name:  req.Name,
		Email: req.Email,
	}
	m.Signups = append(m.Signups, su)
	return su, nil
}

func (m *MockSubmissionService) ListSignups() ([]models.EmailSignup, error) {
	out := make([]models.EmailSignup, 0, len(m.Signups))
	for _, s := range m.Signups {
		out = append(out, *s)
	}
	return out, nil
}

// MockTrafficService is a mock implementation of TrafficService
type MockTrafficService struct {
	TrackFunc func(req *models.TrackRequest, remoteAddr, userAgent string) error
	StatsFunc func(days int) (*models.TrafficStats, error)
	Tracked   []models.TrackRequest
}

// Verify interface compliance
var _ service.TrafficService = (*MockTrafficService)(nil)

func NewMockTrafficService() *MockTrafficService {
	return &MockTrafficService{}
}

func (m *MockTrafficService) Track(req *models.TrackRequest, remoteAddr, userAgent string) error {
	if m.TrackFunc != nil {
		return m.TrackFunc(req, remoteAddr, userAgent)
	}
	m.Tracked = append(m.Tracked, *req)
	return nil
}

func (m *MockTrafficService) Stats(days int) (*models.TrafficStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(days)
	}
	return &models.TrafficStats{AvgSession: "0.0 pages"}, nil
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	Posts map[string]*models.BlogPost
}

// Verify interface compliance
var _ service.BlogService = (*MockBlogService)(nil)

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{Posts: make(map[string]*models.BlogPost)}
}

func (m *MockBlogService) ListPosts() ([]models.BlogPost, error) {
	out := make([]models.BlogPost, 0, len(m.Posts))
	for _, p := range m.Posts {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockBlogService) GetPost(slug string) (*models.BlogPost, error) {
	if p, ok := m.Posts[slug]; ok {
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (m *MockBlogService) CreatePost(req *models.PostRequest) (*models.BlogPost, error) {
	slug := service.Slugify(req.Title)
	if _, ok := m.Posts[slug]; ok {
		return nil, store.ErrConflict
	}
	post := &models.BlogPost{
		Slug:    slug,
		Title:   req.Title,
		Content: req.Content,
		Status:  models.PostStatusDraft,
	}
	m.Posts[slug] = post
	return post, nil
}

func (m *MockBlogService) UpdatePost(slug string, req *models.PostRequest) (*models.BlogPost, error) {
	post, ok := m.Posts[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	post.Title = req.Title
	post.Content = req.Content
	return post, nil
}

func (m *MockBlogService) DeletePost(slug string) error {
	if _, ok := m.Posts[slug]; !ok {
		return store.ErrNotFound
	}
	delete(m.Posts, slug)
	return nil
}

func (m *MockBlogService) PublishPost(slug string) (*models.BlogPost, error) {
	post, ok := m.Posts[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	if post.Status == models.PostStatusPublished {
		return nil, service.ErrInvalidState
	}
	post.Status = models.PostStatusPublished
	return post, nil
}

func (m *MockBlogService) UnpublishPost(slug string) (*models.BlogPost, error) {
	post, ok := m.Posts[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	if post.Status != models.PostStatusPublished {
		return nil, service.ErrInvalidState
	}
	post.Status = models.PostStatusDraft
	return post, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	Comments map[string][]models.Comment
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{Comments: make(map[string][]models.Comment)}
}

func (m *MockCommentService) ListComments(postID string) ([]models.Comment, error) {
	return m.Comments[postID], nil
}

func (m *MockCommentService) AddComment(postID string, req *models.CommentRequest) (*models.Comment, error) {
	comment := models.Comment{
		ID:   strconv.Itoa(len(m.Comments[postID]) + 1),
		Name: req.Name,
		Text: req.Text,
	}
	m.Comments[postID] = append([]models.Comment{comment}, m.Comments[postID]...)
	return &comment, nil
}
