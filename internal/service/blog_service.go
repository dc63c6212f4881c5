package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/publish"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// wordsPerMinute is the reading speed assumed for read-time estimates
const wordsPerMinute = 200

// blogService is the concrete implementation of BlogService
type blogService struct {
	posts     *store.RecordStore
	publisher *publish.Publisher
	policy    *bluemonday.Policy
	log       zerolog.Logger
	now       func() time.Time
}

// newBlogService creates a new BlogService
func newBlogService(posts *store.RecordStore, publisher *publish.Publisher, log zerolog.Logger) *blogService {
	return &blogService{
		posts:     posts,
		publisher: publisher,
		policy:    bluemonday.UGCPolicy(),
		log:       log.With().Str("service", "blog").Logger(),
		now:       time.Now,
	}
}

// ListPosts returns all posts, newest created first
func (s *blogService) ListPosts() ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := s.posts.List(func(key string, data []byte) error {
		var post models.BlogPost
		if err := json.Unmarshal(data, &post); err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// GetPost returns one post by slug
func (s *blogService) GetPost(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.posts.Read(slug, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost stores a new draft. The slug is derived from the title
// and must not collide with an existing post.
func (s *blogService) CreatePost(req *models.PostRequest) (*models.BlogPost, error) {
	if errs := validation.ValidatePost(req); len(errs) > 0 {
		return nil, errs
	}

	slug := Slugify(req.Title)
	if slug == "" {
		return nil, validation.Errors{{Field: "title", Message: "title yields an empty slug"}}
	}

	now := s.now()
	content := s.policy.Sanitize(req.Content)
	post := &models.BlogPost{
		Slug:      slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   content,
		Category:  req.Category,
		Author:    req.Author,
		HeroImage: req.HeroImage,
		ReadTime:  readTime(content),
		Status:    models.PostStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(slug, post); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", slug).Msg("Post created")
	return post, nil
}

// UpdatePost applies the allow-listed request fields to an existing
// post. The slug never changes on update; it is the storage key.
func (s *blogService) UpdatePost(slug string, req *models.PostRequest) (*models.BlogPost, error) {
	if errs := validation.ValidatePost(req); len(errs) > 0 {
		return nil, errs
	}
	post, err := s.GetPost(slug)
	if err != nil {
		return nil, err
	}

	content := s.policy.Sanitize(req.Content)
	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = content
	post.Category = req.Category
	post.Author = req.Author
	post.HeroImage = req.HeroImage
	post.ReadTime = readTime(content)
	post.UpdatedAt = s.now()

	if err := s.posts.Write(slug, post); err != nil {
		return nil, err
	}
	// A published post's static page must track the record
	if post.Status == models.PostStatusPublished {
		if err := s.publisher.WritePostPage(post); err != nil {
			return nil, err
		}
		if err := s.regenerateListing(); err != nil {
			return nil, err
		}
	}
	s.log.Info().Str("slug", slug).Msg("Post updated")
	return post, nil
}

// DeletePost removes a post and, if published, its static artifacts
func (s *blogService) DeletePost(slug string) error {
	post, err := s.GetPost(slug)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(slug); err != nil {
		return err
	}
	if post.Status == models.PostStatusPublished {
		if err := s.publisher.RemovePostPage(slug); err != nil {
			return err
		}
		if err := s.regenerateListing(); err != nil {
			return err
		}
	}
	s.log.Info().Str("slug", slug).Msg("Post deleted")
	return nil
}

// PublishPost transitions draft -> published: writes the static page,
// regenerates the listing, and stamps publishedAt
func (s *blogService) PublishPost(slug string) (*models.BlogPost, error) {
	post, err := s.GetPost(slug)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, fmt.Errorf("%w: %s is already published", ErrInvalidState, slug)
	}

	now := s.now()
	post.Status = models.PostStatusPublished
	post.PublishedAt = &now
	post.UpdatedAt = now

	if err := s.posts.Write(slug, post); err != nil {
		return nil, err
	}
	if err := s.publisher.WritePostPage(post); err != nil {
		return nil, err
	}
	if err := s.regenerateListing(); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", slug).Msg("Post published")
	return post, nil
}

// UnpublishPost transitions published -> draft: removes the static
// page and listing card. publishedAt is retained as "last published
// at" rather than cleared.
func (s *blogService) UnpublishPost(slug string) (*models.BlogPost, error) {
	post, err := s.GetPost(slug)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusPublished {
		return nil, fmt.Errorf("%w: %s is not published", ErrInvalidState, slug)
	}

	post.Status = models.PostStatusDraft
	post.UpdatedAt = s.now()

	if err := s.posts.Write(slug, post); err != nil {
		return nil, err
	}
	if err := s.publisher.RemovePostPage(slug); err != nil {
		return nil, err
	}
	if err := s.regenerateListing(); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", slug).Msg("Post unpublished")
	return post, nil
}

// regenerateListing rebuilds the listing page from every post whose
// status is published, newest publishedAt first
func (s *blogService) regenerateListing() error {
	posts, err := s.ListPosts()
	if err != nil {
		return err
	}
	published := posts[:0]
	for _, p := range posts {
		if p.Status == models.PostStatusPublished {
			published = append(published, p)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		pi, pj := published[i].PublishedAt, published[j].PublishedAt
		if pi == nil || pj == nil {
			return pj == nil && pi != nil
		}
		return pi.After(*pj)
	})
	return s.publisher.WriteListing(published)
}

// Slugify derives a URL-safe slug from a post title
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// readTime estimates reading time from the word count of the content
func readTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
