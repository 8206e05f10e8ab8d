// Package store defines the Store facade the core expects from whatever
// key-value backend is plugged in, plus several concrete implementations.
// The core never relies on key iteration order; any ordering a backend
// keeps is purely backend-internal.
package store

import "context"

// Store is a thin adapter around an external key-value store. Open and
// Close acquire and release persistent resources in a scope; every
// implementation guarantees Close is safe to call after a failed Open
// and that resources are released on every exit path.
type Store interface {
	// Open acquires whatever persistent resources the backend needs
	// (file handles, network connections). It must be safe to call
	// once per Store lifetime.
	Open(ctx context.Context) error
	// Close releases resources acquired by Open. It must be safe to
	// call even if Open failed or was never called.
	Close(ctx context.Context) error
	// Get returns the value stored at key, or ok=false if absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Put stores value at key, overwriting any existing value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry, atomically from the engine's point of
	// view.
	Clear(ctx context.Context) error
}
