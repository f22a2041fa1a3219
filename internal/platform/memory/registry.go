// Package memory implements the store interfaces on a single in-memory
// registry. All state is volatile and process-local.
//
// A single exclusive lock guards the whole registry: cross-entity
// operations (comment creation touches both the user registry and a content
// collection) must not interleave with a concurrent delete of the same
// user, and one mutex is the simplest strategy that keeps them atomic.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/events"
	"github.com/yancdev/socialcore/internal/store"
)

// Compile-time checks that Registry satisfies every store interface.
var (
	_ store.UserStore    = (*Registry)(nil)
	_ store.PostStore    = (*Registry)(nil)
	_ store.GalleryStore = (*Registry)(nil)
	_ store.CommentStore = (*Registry)(nil)
)

// Registry is the authoritative in-memory collection of user records, with
// posts, photos, and comments embedded in their owners. Construct one per
// process (or per test) and pass it explicitly to callers; there is no
// hidden singleton.
type Registry struct {
	mu      sync.Mutex
	users   []domain.User // insertion order preserved
	logger  *slog.Logger
	emitter events.Emitter
}

// New creates an empty registry. The emitter may be nil, in which case
// audit events are dropped.
func New(logger *slog.Logger, emitter events.Emitter) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:  logger.With("component", "registry"),
		emitter: emitter,
	}
}

// Reset clears all registry state. Intended for test isolation and
// teardown; callers holding previously returned copies are unaffected.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = nil
}

// findUser returns a pointer into the backing slice, valid only while the
// lock is held.
func (r *Registry) findUser(id int) *domain.User {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i]
		}
	}
	return nil
}

// emit publishes an audit event. Must be called without the lock held; a
// handler may read back through the registry.
func (r *Registry) emit(eventType, userName string) {
	if r.emitter == nil {
		return
	}
	if err := r.emitter.EmitEvent(context.Background(), events.NewAuditEvent(eventType, userName)); err != nil {
		r.logger.Warn("audit emit failed", "error", err, "event_type", eventType)
	}
}
