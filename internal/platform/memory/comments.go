package memory

import (
	"strings"
	"time"

	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/store"
)

// resolveComments locates the comment collection of a post or photo and
// returns a pointer to it so callers can append or splice in place. Kind
// matching here is exact: only CreateComment folds case, the lookup and
// delete paths have always matched the literal kind strings. The lock must
// be held.
func (r *Registry) resolveComments(targetUserID int, targetKind string, targetID int) (*[]domain.Comment, error) {
	switch targetKind {
	case store.TargetPhoto, store.TargetPhotoAlt:
		u := r.findUser(targetUserID)
		if u == nil {
			return nil, store.ErrTargetUserNotFound
		}
		ph := findPhoto(u, targetID)
		if ph == nil {
			return nil, store.ErrPhotoNotFound
		}
		return &ph.Comments, nil
	case store.TargetPost:
		u := r.findUser(targetUserID)
		if u == nil {
			return nil, store.ErrTargetUserNotFound
		}
		p := findPost(u, targetID)
		if p == nil {
			return nil, store.ErrPostNotFound
		}
		return &p.Comments, nil
	default:
		return nil, store.ErrInvalidTargetKind
	}
}

// CreateComment implements store.CommentStore. Validation order: targeting
// parameters, target user, comment completeness, author, kind dispatch,
// comment id scope. The stored comment is normalized: content trimmed,
// creation time stamped here rather than taken from the payload.
func (r *Registry) CreateComment(targetUserID int, targetKind string, targetID int, comment domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if targetUserID == 0 || targetKind == "" || targetID <= 0 {
		return domain.ErrInvalidTarget
	}
	if r.findUser(targetUserID) == nil {
		return store.ErrTargetUserNotFound
	}
	if err := comment.Validate(); err != nil {
		return err
	}
	if r.findUser(comment.AuthorID) == nil {
		return store.ErrAuthorNotFound
	}

	comments, err := r.resolveComments(targetUserID, strings.ToLower(targetKind), targetID)
	if err != nil {
		return err
	}
	for i := range *comments {
		if (*comments)[i].ID == comment.ID {
			return store.ErrDuplicateCommentID
		}
	}

	*comments = append(*comments, domain.Comment{
		ID:        comment.ID,
		Content:   strings.TrimSpace(comment.Content),
		AuthorID:  comment.AuthorID,
		CreatedAt: time.Now(),
	})
	r.logger.Debug("comment created",
		"targetUserId", targetUserID,
		"targetKind", targetKind,
		"targetId", targetID,
		"commentId", comment.ID)
	return nil
}

// FindComment implements store.CommentStore. Errors from target resolution
// propagate unchanged; an absent comment is (nil, nil).
func (r *Registry) FindComment(targetUserID int, targetKind string, targetID, commentID int) (*domain.Comment, error) {
	var comments []domain.Comment
	var err error
	switch targetKind {
	case store.TargetPhoto, store.TargetPhotoAlt:
		comments, err = r.ListCommentsForPhoto(targetUserID, targetID)
	case store.TargetPost:
		comments, err = r.ListCommentsForPost(targetUserID, targetID)
	default:
		return nil, store.ErrInvalidTargetKind
	}
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == commentID {
			return &comments[i], nil
		}
	}
	return nil, nil
}

// ListCommentsForPost implements store.CommentStore. The returned slice is
// the live collection, not a copy.
func (r *Registry) ListCommentsForPost(targetUserID, postID int) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.resolveComments(targetUserID, store.TargetPost, postID)
	if err != nil {
		return nil, err
	}
	return *comments, nil
}

// ListCommentsForPhoto implements store.CommentStore. Live collection, not
// a copy.
func (r *Registry) ListCommentsForPhoto(targetUserID, photoID int) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.resolveComments(targetUserID, store.TargetPhoto, photoID)
	if err != nil {
		return nil, err
	}
	return *comments, nil
}

// DeleteComment implements store.CommentStore.
func (r *Registry) DeleteComment(targetUserID int, targetKind string, targetID, commentID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.resolveComments(targetUserID, targetKind, targetID)
	if err != nil {
		return err
	}
	for i := range *comments {
		if (*comments)[i].ID == commentID {
			*comments = append((*comments)[:i], (*comments)[i+1:]...)
			return nil
		}
	}
	return store.ErrCommentNotFound
}
