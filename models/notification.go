package models

import "time"

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification is a transient user-visible message produced by a store action.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
