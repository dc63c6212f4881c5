package service

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments *store.CommentStore
	log      zerolog.Logger
	now      func() time.Time
}

// newCommentService creates a new CommentService
func newCommentService(comments *store.CommentStore, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
		now:      time.Now,
	}
}

// ListComments returns a post's comments, newest first
func (s *commentService) ListComments(postID string) ([]models.Comment, error) {
	return s.comments.List(postID)
}

// AddComment appends one comment to a post's bucket. The id is the
// append instant in nanoseconds, which keeps ids distinct within a
// bucket even for back-to-back comments.
func (s *commentService) AddComment(postID string, req *models.CommentRequest) (*models.Comment, error) {
	if errs := validation.ValidateComment(req); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	comment := models.Comment{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Name:      req.Name,
		Text:      req.Text,
		Date:      now.Format("January 2, 2006"),
		CreatedAt: now,
	}
	if err := s.comments.Add(postID, comment); err != nil {
		return nil, err
	}
	s.log.Info().Str("post", postID).Str("id", comment.ID).Msg("Comment added")
	return &comment, nil
}
