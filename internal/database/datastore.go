package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("key not found")

// BlobStore is a durable string-keyed store of opaque values. Writes are
// whole-value replacements; there are no partial updates.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists every key starting with prefix, sorted ascending
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Compile-time verification of both implementations
var (
	_ BlobStore = (*SQLiteStore)(nil)
	_ BlobStore = (*MemoryStore)(nil)
)
