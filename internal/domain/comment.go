package domain

import (
	"fmt"
	"time"
)

// Comment is attached to exactly one post or photo. It holds a weak
// reference to its author: an id only, with no back-pointer from the author
// and no cleanup when the author is deleted. A lookup on a stale AuthorID
// simply fails to resolve.
//
// Comment IDs are unique only within the content item they belong to; the
// same id may appear on a different post or photo.
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks payload completeness: id, content, author id, and
// creation date are all required. Everything maps to ErrInvalidCommentData;
// the comment subsystem does not distinguish which field was missing.
func (c *Comment) Validate() error {
	switch {
	case c.ID == 0:
		return fmt.Errorf("%w: missing id", ErrInvalidCommentData)
	case c.Content == "":
		return fmt.Errorf("%w: missing content", ErrInvalidCommentData)
	case c.AuthorID == 0:
		return fmt.Errorf("%w: missing author id", ErrInvalidCommentData)
	case c.CreatedAt.IsZero():
		return fmt.Errorf("%w: missing creation date", ErrInvalidCommentData)
	}
	return nil
}

// CloneComments copies a comment collection.
func CloneComments(comments []Comment) []Comment {
	out := make([]Comment, len(comments))
	copy(out, comments)
	return out
}
