package store

import "github.com/yancdev/socialcore/internal/domain"

// UserField names a column of the user record in an update request.
type UserField string

// Fields addressable by UpdateUser. Only name, userName, and password are
// mutable; id and email are immutable once the record exists.
const (
	FieldID       UserField = "id"
	FieldName     UserField = "name"
	FieldUserName UserField = "userName"
	FieldPassword UserField = "password"
	FieldEmail    UserField = "email"
)

// UserUpdate is a single-field update request. Build one through the
// constructors below; constructing an update for an immutable or unknown
// field is still representable (the transport layer forwards raw field
// names) and is rejected by UpdateUser with ErrImmutableField or
// ErrInvalidField.
type UserUpdate struct {
	Field UserField
	Value string
}

// NameUpdate requests a change of the display name.
func NameUpdate(v string) UserUpdate { return UserUpdate{Field: FieldName, Value: v} }

// UserNameUpdate requests a change of the unique username. Subject to the
// case-insensitive uniqueness check against all other users.
func UserNameUpdate(v string) UserUpdate { return UserUpdate{Field: FieldUserName, Value: v} }

// PasswordUpdate requests a password change.
func PasswordUpdate(v string) UserUpdate { return UserUpdate{Field: FieldPassword, Value: v} }

// UserStore is the user registry: the authoritative collection of user
// records with registry-wide uniqueness of id, username, and email.
type UserStore interface {
	// CreateUser validates and stores a new record, augmented with empty
	// post and gallery collections. Returns domain.ErrInvalidInput or
	// domain.ErrInvalidEmail on shape failures, and ErrDuplicateID,
	// ErrDuplicateUsername, or ErrDuplicateEmail on collisions (username
	// and email compared case-insensitively).
	CreateUser(user domain.User) error

	// LogInUser looks the username up case-insensitively. Returns
	// ErrUserNotFound or ErrInvalidPassword; on success it emits an audit
	// record and returns nothing else.
	LogInUser(userName, password string) error

	// GetAllUsers returns a defensive copy of every record. Mutating the
	// result never affects the registry.
	GetAllUsers() []domain.User

	// GetUserByID returns a copy of the matching record, or ok=false if
	// absent. Never errors.
	GetUserByID(id int) (*domain.User, bool)

	// GetUsersByName matches namePart case-insensitively as a substring of
	// Name and returns copies with the password stripped.
	GetUsersByName(namePart string) []domain.User

	// UpdateUser applies a single-field update. Returns ErrUserNotFound,
	// ErrImmutableField (id, email), ErrInvalidField (anything outside the
	// allow-list), or ErrDuplicateUsername when another user already holds
	// the requested username.
	UpdateUser(id int, upd UserUpdate) error

	// DeleteUser removes the record and, by embedding, all its posts,
	// photos, and their comments. Returns ErrUserNotFound if absent.
	// Comments elsewhere that name the deleted user as author are left
	// dangling.
	DeleteUser(id int) error

	// Reset clears all registry state. Test/teardown hook.
	Reset()
}
