package models

import (
	"time"
)

// Comment is one reader comment on a published post. Comments for a
// post live together in one JSON file, newest first.
type Comment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Date      string    `json:"date"` // display string
	CreatedAt time.Time `json:"createdAt"`
}

// CommentRequest is the allow-listed field mapping for posting a comment
type CommentRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
