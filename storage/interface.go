// Package storage provides the durable key/value stores that back the session
// mirror. Writes are per key; there is no multi-key transaction.
package storage

import (
	"context"
	"errors"
)

// Storage is a small synchronous key/value store that survives restarts.
type Storage interface {
	// GetItem returns the value for key and whether it was present.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
}

// Closer is implemented by drivers holding connections or file handles.
type Closer interface {
	Close() error
}

// Pinger is implemented by drivers backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrUnknownDriver is returned by New for unsupported driver names.
var ErrUnknownDriver = errors.New("unknown storage driver")
