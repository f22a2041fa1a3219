package domain

import (
	"fmt"
	"strings"
	"time"
)

// Post is a text entry owned by exactly one user. IDs are unique only
// within the owning user's post collection, not globally.
type Post struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// Validate checks the creation payload in the order the registry reports
// failures: ID first, then content, category, and date.
func (p *Post) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: post id must be positive", ErrInvalidID)
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrInvalidContent
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrInvalidCategory
	}
	if p.CreatedAt.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Clone returns a deep copy of the post, comments included.
func (p *Post) Clone() Post {
	out := *p
	out.Comments = CloneComments(p.Comments)
	return out
}

// ClonePosts deep-copies a post collection.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i := range posts {
		out[i] = posts[i].Clone()
	}
	return out
}
