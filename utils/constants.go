// File: utils/constants.go
package utils

// Durable storage keys mirrored from the session store.
const (
	StorageKeyToken = "token"
	StorageKeyRole  = "role"
	StorageKeyUser  = "user"
)

// SessionKeyPrefix namespaces session keys in shared stores such as Redis.
const SessionKeyPrefix = "medicare:session:"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"
