package interfaces

import "context"

// IKeyValueStore is the generic persisted store the quote data lives in.
//
// Get returns nil bytes (and a nil error) when the key was never written.
// Set replaces the whole value; there are no partial writes.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
