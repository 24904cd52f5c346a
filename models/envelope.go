// File: medicare/models/envelope.go
package models

import "encoding/json"

// Envelope is the normalized shape of every backend response as seen above the
// HTTP client. Legacy response variants are folded into Success before an
// Envelope is built.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Status  int             `json:"status,omitempty"`

	// Auth endpoints return the session fields at the top level.
	Token string `json:"token,omitempty"`
	Role  string `json:"role,omitempty"`
}

// HasData reports whether the envelope carries a non-null payload.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// Result is what services and stores hand back to their callers. It is either
// a success carrying Data or a failure carrying Message; use Ok and Fail to
// build one.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Status  int    `json:"status,omitempty"`

	// RequiresApproval is set by account deletions, which the backend queues
	// for an administrator instead of applying immediately.
	RequiresApproval bool `json:"requiresApproval,omitempty"`
}

// Ok builds a successful result.
func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed result. The zero value of T is kept as Data.
func Fail[T any](message string, status int) Result[T] {
	return Result[T]{Success: false, Message: message, Status: status}
}

// MessageOr returns the result message, or fallback when the backend sent none.
func (r Result[T]) MessageOr(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}
