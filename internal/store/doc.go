// Package store defines the storage interfaces of the registry and the
// error kinds its operations surface. Implementations live under
// internal/platform; the canonical one is the in-memory registry in
// internal/platform/memory.
//
// All failures are synchronous and terminal to the call: validation happens
// before any mutation, so a failed operation never leaves partial state.
package store
