package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
)

func TestCommentStore_NewestFirst(t *testing.T) {
	s := store.NewCommentStore(t.TempDir(), zerolog.Nop())

	first := models.Comment{ID: "1", Name: "Ann", Text: "first", CreatedAt: time.Now()}
	second := models.Comment{ID: "2", Name: "Ben", Text: "second", CreatedAt: time.Now()}

	if err := s.Add("my-post", first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("my-post", second); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	comments, err := s.List("my-post")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != "2" || comments[1].ID != "1" {
		t.Errorf("Comments not newest first: %+v", comments)
	}
}

func TestCommentStore_EmptyForUnknownPost(t *testing.T) {
	s := store.NewCommentStore(t.TempDir(), zerolog.Nop())

	comments, err := s.List("never-seen")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("Expected no comments, got %d", len(comments))
	}
}

func TestCommentStore_RejectsBadPostID(t *testing.T) {
	s := store.NewCommentStore(t.TempDir(), zerolog.Nop())

	if _, err := s.List("../other"); !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
	if err := s.Add("a/b", models.Comment{ID: "1"}); !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
}
