package session

import "medicare/models"

// ActionType names a session transition.
type ActionType string

const (
	LoginStart      ActionType = "LOGIN_START"
	LoginSuccess    ActionType = "LOGIN_SUCCESS"
	LoginFailure    ActionType = "LOGIN_FAILURE"
	RegisterStart   ActionType = "REGISTER_START"
	RegisterSuccess ActionType = "REGISTER_SUCCESS"
	RegisterFailure ActionType = "REGISTER_FAILURE"
	Logout          ActionType = "LOGOUT"
	UpdateUser      ActionType = "UPDATE_USER"
	ClearError      ActionType = "CLEAR_ERROR"
	SessionExpired  ActionType = "SESSION_EXPIRED"
)

// Action is one transition. User, Role and Token are read by LOGIN_SUCCESS and
// UPDATE_USER; Message by the failure transitions.
type Action struct {
	Type    ActionType
	User    models.UserProfile
	Role    models.Role
	Token   string
	Message string
}

// State is who is logged in. Token, Role and User are set and cleared
// together; an empty Token means anonymous.
type State struct {
	User      models.UserProfile `json:"user"`
	Role      models.Role        `json:"role"`
	Token     string             `json:"-"`
	IsLoading bool               `json:"isLoading"`
	Error     string             `json:"error,omitempty"`
}

// Authenticated reports whether a token is held.
func (s State) Authenticated() bool { return s.Token != "" }

// Reduce applies a to s. Actions that would break the token/role/user
// pairing are ignored.
func Reduce(s State, a Action) State {
	switch a.Type {
	case LoginStart, RegisterStart:
		s.IsLoading = true
		s.Error = ""
	case LoginSuccess:
		if a.Token == "" || a.Role == "" || a.User == nil {
			return s
		}
		s.User = a.User.Clone()
		s.Role = a.Role
		s.Token = a.Token
		s.IsLoading = false
		s.Error = ""
	case LoginFailure, SessionExpired:
		s = State{Error: a.Message}
	case RegisterSuccess:
		s.IsLoading = false
		s.Error = ""
	case RegisterFailure:
		s.IsLoading = false
		s.Error = a.Message
	case Logout:
		s = State{}
	case UpdateUser:
		if !s.Authenticated() || a.User == nil {
			return s
		}
		s.User = a.User.Clone()
		s.IsLoading = false
		s.Error = ""
	case ClearError:
		s.Error = ""
	}
	return s
}
