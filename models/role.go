package models

import "fmt"

// Role identifies which kind of account a session belongs to.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a raw role string into a Role. An empty string yields
// the empty Role (no session) without error.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case "", RolePatient, RoleDoctor, RoleAdmin:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

func (r Role) String() string {
	return string(r)
}
