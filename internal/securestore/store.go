// Package securestore is the device-local secure key-value store behind the
// session and credential registry. It is a passive persistence layer: JSON
// encoding, uniqueness checks, and every other business rule live with the
// callers.
//
// Contract shared by all backends:
//   - GetItem returns (nil, nil) for an absent key; absence is not an error.
//   - SetItem overwrites whole values (upsert).
//   - SetItems applies a multi-key write atomically.
//   - DeleteItem is idempotent.
package securestore

import (
	"context"
	"fmt"
)

// Store is the persistence abstraction used by the session manager.
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	SetItems(ctx context.Context, items map[string][]byte) error
	DeleteItem(ctx context.Context, key string) error
}

// StorageError wraps any failure of the underlying storage primitive.
// Callers treat it as fatal for the current operation; nothing is retried.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s item[%s]: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}
