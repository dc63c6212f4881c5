package models

import (
	"time"
)

// PostStatus is the publication state of a blog post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// ValidStatuses defines allowed post statuses
var ValidStatuses = map[PostStatus]bool{
	PostStatusDraft:     true,
	PostStatusPublished: true,
}

// BlogPost represents one post, stored as a JSON file keyed by slug.
// While status is published a static HTML page and a listing card
// exist for it as well.
type BlogPost struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"` // sanitized HTML fragment
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	HeroImage   string     `json:"heroImage,omitempty"`
	ReadTime    string     `json:"readTime"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// PostRequest is the allow-listed field mapping for post create/update
type PostRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	HeroImage string `json:"heroImage"`
}
