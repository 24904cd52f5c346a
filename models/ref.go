package models

import (
	"bytes"
	"encoding/json"
)

// Ref points at another document. The backend sometimes returns a bare id and
// sometimes the populated document, so both forms decode into a Ref.
type Ref struct {
	ID             string `json:"_id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Photo          string `json:"photo,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// MarshalJSON writes an id-only Ref back as a bare id.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" && r.Email == "" && r.Photo == "" && r.Specialization == "" {
		return json.Marshal(r.ID)
	}
	type plain Ref
	return json.Marshal(plain(r))
}
