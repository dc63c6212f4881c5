package publish_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/publish"
)

func testPost(slug, title string) *models.BlogPost {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return &models.BlogPost{
		Slug:      slug,
		Title:     title,
		Excerpt:   "An excerpt",
		Content:   "<p>Hello <strong>world</strong></p>",
		Category:  "News",
		Author:    "Jane Doe",
		ReadTime:  "3 min read",
		Status:    models.PostStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRenderPost_Deterministic(t *testing.T) {
	p := publish.New(t.TempDir(), zerolog.Nop())
	post := testPost("hello-world", "Hello World")

	first, err := p.RenderPost(post)
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}
	second, err := p.RenderPost(post)
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}
	if first != second {
		t.Error("RenderPost is not deterministic for identical input")
	}

	if !strings.Contains(first, `data-slug="hello-world"`) {
		t.Error("Rendered page does not carry the slug")
	}
	if !strings.Contains(first, "<strong>world</strong>") {
		t.Error("Post content HTML was escaped instead of embedded")
	}
	if !strings.Contains(first, `data-post="hello-world"`) {
		t.Error("Comment section does not address the post's comment bucket")
	}
}

func TestWriteAndRemovePostPage(t *testing.T) {
	dir := t.TempDir()
	p := publish.New(dir, zerolog.Nop())
	post := testPost("my-post", "My Post")

	if err := p.WritePostPage(post); err != nil {
		t.Fatalf("WritePostPage failed: %v", err)
	}
	if !p.PostPageExists("my-post") {
		t.Fatal("Expected static page on disk after publish")
	}

	if err := p.RemovePostPage("my-post"); err != nil {
		t.Fatalf("RemovePostPage failed: %v", err)
	}
	if p.PostPageExists("my-post") {
		t.Error("Static page still on disk after removal")
	}

	// Removing again is not an error
	if err := p.RemovePostPage("my-post"); err != nil {
		t.Errorf("Second RemovePostPage failed: %v", err)
	}
}

func TestWriteListing(t *testing.T) {
	dir := t.TempDir()
	p := publish.New(dir, zerolog.Nop())

	posts := []models.BlogPost{*testPost("first-post", "First Post"), *testPost("second-post", "Second Post")}
	if err := p.WriteListing(posts); err != nil {
		t.Fatalf("WriteListing failed: %v", err)
	}

	data, err := os.ReadFile(p.ListingPath())
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	if !strings.Contains(page, `data-slug="first-post"`) || !strings.Contains(page, `data-slug="second-post"`) {
		t.Error("Listing missing a card for a published post")
	}
	if strings.Index(page, "first-post") > strings.Index(page, "second-post") {
		t.Error("Listing cards not in the given order")
	}

	// Regenerating without a post drops its card
	if err := p.WriteListing(posts[1:]); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(p.ListingPath())
	if strings.Contains(string(data), "first-post") {
		t.Error("Card for removed post still present after regeneration")
	}
}
