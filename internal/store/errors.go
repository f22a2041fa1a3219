package store

import (
	"errors"
	"fmt"
)

// Referential errors: a looked-up entity does not exist. Specific kinds
// wrap ErrNotFound so errors.Is matches the family.
var (
	// ErrNotFound is the generic root of all "not found" errors.
	ErrNotFound = errors.New("entity not found")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTargetUserNotFound indicates the user a comment targets does not exist.
	ErrTargetUserNotFound = fmt.Errorf("%w: comment target user", ErrNotFound)

	// ErrAuthorNotFound indicates a comment's author id resolves to no user.
	ErrAuthorNotFound = fmt.Errorf("%w: comment author", ErrNotFound)

	// ErrPostNotFound indicates the requested post does not exist on the user.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrPhotoNotFound indicates the requested photo does not exist in the gallery.
	ErrPhotoNotFound = fmt.Errorf("%w: photo", ErrNotFound)

	// ErrCommentNotFound indicates the requested comment does not exist on the target.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
)

// Uniqueness errors: an operation would violate a uniqueness scope. User
// ids, usernames, and emails are unique across the registry; post, photo,
// and comment ids are unique only within their owner.
var (
	// ErrDuplicate is the generic root of all uniqueness violations.
	ErrDuplicate = errors.New("entity already exists")

	// ErrDuplicateID indicates an id collision within the relevant scope.
	ErrDuplicateID = fmt.Errorf("%w: id", ErrDuplicate)

	// ErrDuplicateUsername indicates a case-insensitive username collision.
	ErrDuplicateUsername = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrDuplicateEmail indicates a case-insensitive email collision.
	ErrDuplicateEmail = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrDuplicateCommentID indicates the target content item already has a
	// comment with that id.
	ErrDuplicateCommentID = fmt.Errorf("%w: comment id", ErrDuplicate)
)

// Domain-rule errors: the payload is well-formed but the operation breaks a
// registry rule.
var (
	// ErrImmutableField is returned when an update names id or email.
	ErrImmutableField = errors.New("field cannot be changed")

	// ErrInvalidField is returned when an update names a field outside the
	// mutable allow-list.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidPassword is returned by login on a password mismatch.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidRange is returned by date range queries when the start bound
	// is after the end bound.
	ErrInvalidRange = errors.New("start date must not be after end date")

	// ErrInvalidTargetKind is returned when a comment operation names a
	// target kind other than post or photo.
	ErrInvalidTargetKind = errors.New("invalid target kind")
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of uniqueness violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
