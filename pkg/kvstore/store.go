package kvstore

import "context"

// Store is a small byte-oriented key/value abstraction. The conversation
// snapshots live behind it, so the backend can be swapped between the
// in-process cache and Redis without touching callers.
type Store interface {
	// Get returns the value for key. The bool reports whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
