// Package storage provides the durable key-value store that backs user
// records, the session pointer and persisted catalog state.
//
// Two implementations are available: SQLiteStore (database/sql over
// modernc.org/sqlite, schema managed by goose) and MemoryStore, which is
// used in tests and as a fallback when the database cannot be opened.
//
// Every error returned by a store wraps common.ErrStorageUnavailable.
package storage

import "context"

// Store is a string-keyed blob store.
//
// Get returns (nil, nil) when the key is absent. Remove is idempotent.
// SetAll writes all pairs atomically: either every pair is stored or none.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
