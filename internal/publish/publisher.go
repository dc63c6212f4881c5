// Package publish generates the static HTML artifacts for published
// blog posts: one page per post plus the shared listing page. The
// listing is rendered wholesale from the current set of published
// posts rather than spliced in place, so its markup can never drift
// out of sync with the post records.
package publish

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
)

// Publisher writes static pages for published posts
type Publisher struct {
	htmlDir string
	log     zerolog.Logger
}

// New creates a Publisher writing into htmlDir
func New(htmlDir string, log zerolog.Logger) *Publisher {
	return &Publisher{
		htmlDir: htmlDir,
		log:     log.With().Str("component", "publisher").Logger(),
	}
}

type postView struct {
	models.BlogPost
	Body template.HTML
}

// RenderPost produces the full static page for a post. It depends on
// nothing but the post's own fields, so the same post always renders
// to the same document. The slug is embedded as a data attribute so
// the page's comment widget can address the right comment bucket.
func (p *Publisher) RenderPost(post *models.BlogPost) (string, error) {
	var buf bytes.Buffer
	view := postView{BlogPost: *post, Body: template.HTML(post.Content)}
	if err := postTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering post %s: %w", post.Slug, err)
	}
	return buf.String(), nil
}

// WritePostPage renders and stores the static page for a post
func (p *Publisher) WritePostPage(post *models.BlogPost) error {
	doc, err := p.RenderPost(post)
	if err != nil {
		return err
	}
	path, err := p.pagePath(post.Slug)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return err
	}
	p.log.Info().Str("slug", post.Slug).Msg("Wrote static post page")
	return nil
}

// RemovePostPage deletes the static page for a slug. A page that is
// already gone is not an error.
func (p *Publisher) RemovePostPage(slug string) error {
	path, err := p.pagePath(slug)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PostPageExists reports whether the static page for slug is on disk
func (p *Publisher) PostPageExists(slug string) bool {
	path, err := p.pagePath(slug)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(path)
	return statErr == nil
}

// WriteListing regenerates the listing page from the published posts,
// in the order given (callers pass newest published first)
func (p *Publisher) WriteListing(posts []models.BlogPost) error {
	var buf bytes.Buffer
	views := make([]postView, len(posts))
	for i, post := range posts {
		views[i] = postView{BlogPost: post}
	}
	if err := listingTemplate.Execute(&buf, views); err != nil {
		return fmt.Errorf("rendering listing: %w", err)
	}
	if err := os.WriteFile(p.ListingPath(), buf.Bytes(), 0644); err != nil {
		return err
	}
	p.log.Info().Int("posts", len(posts)).Msg("Regenerated blog listing")
	return nil
}

// ListingPath returns where the listing page is stored
func (p *Publisher) ListingPath() string {
	return filepath.Join(p.htmlDir, "index.html")
}

func (p *Publisher) pagePath(slug string) (string, error) {
	if !store.ValidateID(slug) {
		return "", fmt.Errorf("%w: %q", store.ErrInvalidID, slug)
	}
	return filepath.Join(p.htmlDir, slug+".html"), nil
}
