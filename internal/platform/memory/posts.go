package memory

import (
	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/store"
)

// findPost returns a pointer into the owner's post collection, valid only
// while the lock is held.
func findPost(u *domain.User, postID int) *domain.Post {
	for i := range u.Posts {
		if u.Posts[i].ID == postID {
			return &u.Posts[i]
		}
	}
	return nil
}

// CreatePost implements store.PostStore. Payload shape is checked before
// the owner is resolved, so a malformed post against an unknown user
// reports the shape error.
func (r *Registry) CreatePost(userID int, post domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := post.Validate(); err != nil {
		return err
	}
	u := r.findUser(userID)
	if u == nil {
		return store.ErrUserNotFound
	}
	if findPost(u, post.ID) != nil {
		return store.ErrDuplicateID
	}

	rec := post.Clone()
	rec.Comments = []domain.Comment{}
	u.Posts = append(u.Posts, rec)
	r.logger.Debug("post created", "userId", userID, "postId", post.ID)
	return nil
}

// RemovePost implements store.PostStore. An out-of-range index reports
// ErrUserNotFound, same as a missing user; the two conditions have always
// shared one error kind and callers test against it.
func (r *Registry) RemovePost(userID, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil || index < 0 || index >= len(u.Posts) {
		return store.ErrUserNotFound
	}
	u.Posts = append(u.Posts[:index], u.Posts[index+1:]...)
	return nil
}

// SearchPosts implements store.PostStore.
func (r *Registry) SearchPosts(userID int) []domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return []domain.Post{}
	}
	return domain.ClonePosts(u.Posts)
}

// SearchPostCategory implements store.PostStore. Category matching is
// exact, not case-folded.
func (r *Registry) SearchPostCategory(userID int, category string) []domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Post, 0)
	u := r.findUser(userID)
	if u == nil {
		return out
	}
	for i := range u.Posts {
		if u.Posts[i].Category == category {
			out = append(out, u.Posts[i].Clone())
		}
	}
	return out
}

// SearchPostByID implements store.PostStore.
func (r *Registry) SearchPostByID(userID, postID int) (*domain.Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return nil, false
	}
	p := findPost(u, postID)
	if p == nil {
		return nil, false
	}
	rec := p.Clone()
	return &rec, true
}

// GetPostsByRangeDate implements store.PostStore. The owner is resolved
// before the bounds are parsed: an unknown user yields an empty result even
// when the bounds are garbage.
func (r *Registry) GetPostsByRangeDate(userID int, start, end string) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return []domain.Post{}, nil
	}

	startT, err := domain.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endT, err := domain.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if startT.After(endT) {
		return nil, store.ErrInvalidRange
	}

	out := make([]domain.Post, 0)
	for i := range u.Posts {
		created := u.Posts[i].CreatedAt
		if !created.Before(startT) && !created.After(endT) {
			out = append(out, u.Posts[i].Clone())
		}
	}
	return out, nil
}
