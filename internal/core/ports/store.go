package ports

import "context"

// Store is the key-value persistence area every collection lives in.
// Values are opaque bytes; each key holds one whole collection.
type Store interface {
	// Get returns the stored value, or domain.ErrKeyNotFound when the key
	// has never been written (or was deleted).
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// DataInitializer seeds and wipes the persisted collections.
type DataInitializer interface {
	// Initialize writes the default records into every collection that has
	// no stored value yet. Existing values are never overwritten.
	Initialize(ctx context.Context) error
	// Clear removes every collection, the session marker and the audit trail.
	Clear(ctx context.Context) error
}
