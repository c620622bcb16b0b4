// Package interfaces defines service contracts for Varlik
package interfaces

import "context"

// KeyValueStorage is the persistence backend for the balance book. The ledger
// serializes its full state as one blob under a single fixed key; the backend
// does not interpret the payload.
type KeyValueStorage interface {
	// Get returns the stored value. A missing key returns an error that
	// matches IsNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
