package models

import "time"

// DeletionRequest is an account deletion awaiting an administrator decision.
type DeletionRequest struct {
	ID         string     `json:"_id"`
	User       Ref        `json:"user"`
	UserModel  string     `json:"userModel,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"adminNotes,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

func (d DeletionRequest) GetID() string { return d.ID }

// DeletionDecision is the admin body of PUT /deletion-requests/:id.
type DeletionDecision struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}
