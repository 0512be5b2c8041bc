// Package contract provides interfaces and shared utilities for folio's internal architecture.
package contract

import "github.com/huangsam/folio/schema"

// StoreManager defines the interface for reaching the key/value stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetPreferenceStore() CacheStore
	GetDatasetStore() CacheStore
}

// CacheStore defines the interface for versioned key/value storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	GetStatus() (schema.StoreStatus, error)
	Close() error
}
