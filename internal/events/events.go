// Package events provides an in-process audit event channel. The registry
// publishes notable user activity (logins, registrations) without direct
// knowledge of who consumes it.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Audit event types emitted by the registry.
const (
	TypeUserCreated  = "user.created"
	TypeUserLoggedIn = "user.logged_in"
)

// AuditEvent records one observable action against the registry.
type AuditEvent struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants.
	Type string `json:"type"`

	// UserName identifies the acting user.
	UserName string `json:"userName"`

	// At is the timestamp when the event was created.
	At time.Time `json:"at"`
}

// NewAuditEvent creates an AuditEvent with a fresh id and timestamp.
func NewAuditEvent(eventType, userName string) *AuditEvent {
	return &AuditEvent{
		ID:       uuid.New(),
		Type:     eventType,
		UserName: userName,
		At:       time.Now(),
	}
}

// Handler processes audit events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *AuditEvent) error
}

// Emitter publishes audit events to registered handlers.
type Emitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *AuditEvent) error
}
