package store

import "github.com/yancdev/socialcore/internal/domain"

// Target kinds accepted by the comment subsystem. Matching is
// case-insensitive; "foto" is a synonym kept from the original data set.
const (
	TargetPost     = "post"
	TargetPhoto    = "photo"
	TargetPhotoAlt = "foto"
)

// CommentStore attaches comments to posts and photos, validating both the
// target and the comment's author against the user registry.
type CommentStore interface {
	// CreateComment validates in order: targeting parameters
	// (domain.ErrInvalidTarget), target user (ErrTargetUserNotFound),
	// comment completeness (domain.ErrInvalidCommentData), author
	// (ErrAuthorNotFound), kind dispatch (ErrPostNotFound, ErrPhotoNotFound,
	// or ErrInvalidTargetKind), and per-target comment id uniqueness
	// (ErrDuplicateCommentID). On success it appends a normalized comment:
	// trimmed content, creation time stamped by the registry.
	CreateComment(targetUserID int, targetKind string, targetID int, comment domain.Comment) error

	// FindComment searches the target's comments by id, delegating target
	// resolution to the list operations and propagating their errors
	// unchanged. An absent comment is (nil, nil), not an error.
	FindComment(targetUserID int, targetKind string, targetID, commentID int) (*domain.Comment, error)

	// ListCommentsForPost returns the live comment collection of the post.
	// Unlike the content store reads this is NOT a defensive copy; callers
	// must not assume immutability.
	ListCommentsForPost(targetUserID, postID int) ([]domain.Comment, error)

	// ListCommentsForPhoto is ListCommentsForPost for gallery photos.
	ListCommentsForPhoto(targetUserID, photoID int) ([]domain.Comment, error)

	// DeleteComment resolves the collection as the list operations do, then
	// removes the comment, or returns ErrCommentNotFound.
	DeleteComment(targetUserID int, targetKind string, targetID, commentID int) error
}
