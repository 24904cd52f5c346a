package models

// UserProfile is the server-provided account document. Its shape differs per
// role, so it is kept as an opaque bag with a few optional accessors.
type UserProfile map[string]any

func (u UserProfile) str(key string) string {
	if u == nil {
		return ""
	}
	if v, ok := u[key].(string); ok {
		return v
	}
	return ""
}

// ID returns the profile identifier, accepting both "_id" and "id".
func (u UserProfile) ID() string {
	if id := u.str("_id"); id != "" {
		return id
	}
	return u.str("id")
}

func (u UserProfile) Name() string  { return u.str("name") }
func (u UserProfile) Email() string { return u.str("email") }
func (u UserProfile) Photo() string { return u.str("photo") }

// Clone returns a shallow copy so callers cannot mutate store state.
func (u UserProfile) Clone() UserProfile {
	if u == nil {
		return nil
	}
	out := make(UserProfile, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationData is the sign-up request. Photo is optional; when present the
// request is sent as multipart form data.
type RegistrationData struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Password       string      `json:"password"`
	Role           Role        `json:"role"`
	Gender         string      `json:"gender,omitempty"`
	Specialization string      `json:"specialization,omitempty"`
	Photo          *UploadFile `json:"-"`
}

// PasswordUpdate is the body of PUT /password.
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// UploadFile is an in-memory file attached to a multipart request.
type UploadFile struct {
	FieldName string
	FileName  string
	Content   []byte
}

// AuthPayload is the session material returned by a successful login.
type AuthPayload struct {
	User  UserProfile `json:"user"`
	Role  string      `json:"role"`
	Token string      `json:"token"`
}
