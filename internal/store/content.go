package store

import "github.com/yancdev/socialcore/internal/domain"

// PostStore manages the per-user post collections.
type PostStore interface {
	// CreatePost validates the payload (positive id, non-blank content and
	// category, valid date — in that order), resolves the owner
	// (ErrUserNotFound), checks the per-user id scope (ErrDuplicateID), and
	// appends a copy of the post with an empty comment collection.
	CreatePost(userID int, post domain.Post) error

	// RemovePost removes the post at a positional index. Returns
	// ErrUserNotFound both when the user is absent and when the index is
	// outside [0, len(posts)) — the two conditions share one error kind.
	RemovePost(userID, index int) error

	// SearchPosts returns a defensive copy of the user's posts, or an empty
	// slice if the user does not exist.
	SearchPosts(userID int) []domain.Post

	// SearchPostCategory returns posts whose category matches exactly, or
	// an empty slice.
	SearchPostCategory(userID int, category string) []domain.Post

	// SearchPostByID returns a copy of the matching post, or ok=false when
	// either the post or the user is absent. Never errors.
	SearchPostByID(userID, postID int) (*domain.Post, bool)

	// GetPostsByRangeDate parses both bounds (domain.ErrInvalidDate on
	// failure), rejects start after end with ErrInvalidRange, and returns
	// posts whose CreatedAt falls within [start, end] inclusive. An unknown
	// user yields an empty slice, not an error.
	GetPostsByRangeDate(userID int, start, end string) ([]domain.Post, error)
}

// GalleryStore manages the per-user photo galleries.
type GalleryStore interface {
	// UploadPhoto resolves the owner first (ErrUserNotFound), validates the
	// payload (positive id, supported MIME type, non-blank description,
	// valid date), checks the per-user gallery scope (ErrDuplicateID), and
	// stores a copy with an empty comment collection. Returns the stored
	// copy.
	UploadPhoto(userID int, photo domain.Photo) (*domain.Photo, error)

	// GetPhotoByID returns a copy of the match, or ok=false. Never errors,
	// even for unknown users.
	GetPhotoByID(userID, photoID int) (*domain.Photo, bool)

	// GetPhotosByUser returns a defensive copy of the gallery, or an empty
	// slice.
	GetPhotosByUser(userID int) []domain.Photo

	// GetPhotosByRangeDate returns domain.ErrInvalidDateFormat if either
	// bound fails to parse and ErrInvalidRange if start is after end, then
	// filters by CreateDat within [start, end] inclusive. An unknown user
	// yields an empty slice.
	GetPhotosByRangeDate(userID int, start, end string) ([]domain.Photo, error)

	// DeletePhoto returns ErrUserNotFound when the user is absent and
	// ErrPhotoNotFound when the id is not in the gallery.
	DeletePhoto(userID, photoID int) error
}
