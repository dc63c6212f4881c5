package store

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
)

// CommentStore keeps one JSON file per post, holding that post's
// comments newest first. Comments are append-only through this
// surface; nothing ever mutates or removes an individual comment.
type CommentStore struct {
	dir string
	log zerolog.Logger
}

// NewCommentStore creates a CommentStore over the given directory
func NewCommentStore(dir string, log zerolog.Logger) *CommentStore {
	return &CommentStore{
		dir: dir,
		log: log.With().Str("store", "comments").Logger(),
	}
}

// List returns the comments for postID, newest first. A post with no
// comment file reads as an empty list.
func (s *CommentStore) List(postID string) ([]models.Comment, error) {
	path, err := securePath(s.dir, postID, ".json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Comment{}, nil
		}
		return nil, err
	}
	var comments []models.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Add prepends one comment to the post's file
func (s *CommentStore) Add(postID string, comment models.Comment) error {
	path, err := securePath(s.dir, postID, ".json")
	if err != nil {
		return err
	}
	comments, err := s.List(postID)
	if err != nil {
		return err
	}
	comments = append([]models.Comment{comment}, comments...)

	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
