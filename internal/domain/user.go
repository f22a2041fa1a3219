package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks required-field shape on creation payloads. A single
// instance is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// User represents a registered user of the platform. The user owns its
// posts and photo gallery exclusively: both collections are embedded in the
// record rather than stored as independently addressable entities, so
// deleting a user discards everything beneath it.
//
// Passwords are kept in plaintext. This mirrors the upstream design; there
// is no credential storage requirement beyond the login check.
type User struct {
	ID       int     `json:"id"       validate:"required"`
	Name     string  `json:"name"`
	UserName string  `json:"userName" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Email    string  `json:"email"    validate:"required"`
	Posts    []Post  `json:"posts"`
	Images   []Photo `json:"images"`
}

// Validate checks the creation payload: id, userName, password and email are
// all required (ErrInvalidInput), and the email must contain an "@"
// (ErrInvalidEmail). Name is optional, matching the original record shape.
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Clone returns a deep copy of the user. Mutating the copy, including its
// posts, gallery, and their comment collections, never affects the original.
func (u *User) Clone() User {
	out := *u
	out.Posts = ClonePosts(u.Posts)
	out.Images = ClonePhotos(u.Images)
	return out
}
