package memory

import (
	"strings"

	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/events"
	"github.com/yancdev/socialcore/internal/store"
)

// CreateUser implements store.UserStore. Uniqueness is checked in three
// passes so the reported collision keeps its precedence: id before
// username before email.
func (r *Registry) CreateUser(user domain.User) error {
	r.mu.Lock()

	if err := user.Validate(); err != nil {
		r.mu.Unlock()
		return err
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.mu.Unlock()
			return store.ErrDuplicateID
		}
	}
	for i := range r.users {
		if strings.EqualFold(r.users[i].UserName, user.UserName) {
			r.mu.Unlock()
			return store.ErrDuplicateUsername
		}
	}
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) {
			r.mu.Unlock()
			return store.ErrDuplicateEmail
		}
	}

	rec := user.Clone()
	rec.Posts = []domain.Post{}
	rec.Images = []domain.Photo{}
	r.users = append(r.users, rec)
	r.mu.Unlock()

	r.logger.Info("user created", "id", user.ID, "userName", user.UserName)
	r.emit(events.TypeUserCreated, user.UserName)
	return nil
}

// LogInUser implements store.UserStore. Success is observable only through
// the audit log line and event; nothing is returned.
func (r *Registry) LogInUser(userName, password string) error {
	r.mu.Lock()
	var found *domain.User
	for i := range r.users {
		if strings.EqualFold(r.users[i].UserName, userName) {
			found = &r.users[i]
			break
		}
	}
	if found == nil {
		r.mu.Unlock()
		return store.ErrUserNotFound
	}
	if found.Password != password {
		r.mu.Unlock()
		return store.ErrInvalidPassword
	}
	name := found.UserName
	r.mu.Unlock()

	r.logger.Info("user logged in", "userName", name)
	r.emit(events.TypeUserLoggedIn, name)
	return nil
}

// GetAllUsers implements store.UserStore.
func (r *Registry) GetAllUsers() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, len(r.users))
	for i := range r.users {
		out[i] = r.users[i].Clone()
	}
	return out
}

// GetUserByID implements store.UserStore.
func (r *Registry) GetUserByID(id int) (*domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(id)
	if u == nil {
		return nil, false
	}
	rec := u.Clone()
	return &rec, true
}

// GetUsersByName implements store.UserStore. Matches are copies with the
// password stripped.
func (r *Registry) GetUsersByName(namePart string) []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	part := strings.ToLower(namePart)
	out := make([]domain.User, 0)
	for i := range r.users {
		if strings.Contains(strings.ToLower(r.users[i].Name), part) {
			rec := r.users[i].Clone()
			rec.Password = ""
			out = append(out, rec)
		}
	}
	return out
}

// UpdateUser implements store.UserStore.
func (r *Registry) UpdateUser(id int, upd store.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(id)
	if u == nil {
		return store.ErrUserNotFound
	}

	switch upd.Field {
	case store.FieldID, store.FieldEmail:
		return store.ErrImmutableField
	case store.FieldName:
		u.Name = upd.Value
	case store.FieldUserName:
		for i := range r.users {
			if r.users[i].ID != id && strings.EqualFold(r.users[i].UserName, upd.Value) {
				return store.ErrDuplicateUsername
			}
		}
		u.UserName = upd.Value
	case store.FieldPassword:
		u.Password = upd.Value
	default:
		return store.ErrInvalidField
	}
	return nil
}

// DeleteUser implements store.UserStore. Embedded posts, photos, and their
// comments go with the record. Comments on other users' content that name
// this user as author are left dangling on purpose; see domain.Comment.
func (r *Registry) DeleteUser(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.logger.Info("user deleted", "id", id)
			return nil
		}
	}
	return store.ErrUserNotFound
}
