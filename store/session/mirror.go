package session

import (
	"encoding/json"
	"fmt"
	"time"

	"medicare/models"
	"medicare/storage"
	"medicare/utils"

	"go.uber.org/zap"
)

// Mirror keeps token, role and user in durable storage in step with the store.
// Fields are written one at a time; a crash between writes can leave storage
// partially synced, and Load reports such a state rather than repairing it.
type Mirror struct {
	storage storage.Storage
	logger  *zap.Logger
	now     func() time.Time
}

func NewMirror(s storage.Storage, logger *zap.Logger) *Mirror {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror{storage: s, logger: logger, now: time.Now}
}

// Load reads the persisted session. A missing field stays empty. A token whose
// JWT exp has passed is treated as a finished session and cleared from storage.
func (m *Mirror) Load() (State, error) {
	var st State

	token, _, err := m.storage.GetItem(utils.StorageKeyToken)
	if err != nil {
		return State{}, fmt.Errorf("failed to read token: %w", err)
	}
	rawRole, _, err := m.storage.GetItem(utils.StorageKeyRole)
	if err != nil {
		return State{}, fmt.Errorf("failed to read role: %w", err)
	}
	rawUser, hasUser, err := m.storage.GetItem(utils.StorageKeyUser)
	if err != nil {
		return State{}, fmt.Errorf("failed to read user: %w", err)
	}

	if token != "" && utils.TokenExpired(token, m.now()) {
		m.logger.Info("Stored session token expired; discarding session")
		m.Clear()
		return State{}, nil
	}

	st.Token = token
	if role, err := models.ParseRole(rawRole); err == nil {
		st.Role = role
	} else {
		m.logger.Warn("Ignoring stored role", zap.String("role", rawRole))
	}
	if hasUser && rawUser != "" && rawUser != "null" {
		var user models.UserProfile
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
			m.logger.Warn("Ignoring unreadable stored user", zap.Error(err))
		} else {
			st.User = user
		}
	}

	if (st.Token != "") != (st.Role != "") || (st.Token != "") != (st.User != nil) {
		m.logger.Warn("Stored session is partially synced",
			zap.Bool("token", st.Token != ""),
			zap.Bool("role", st.Role != ""),
			zap.Bool("user", st.User != nil))
	}
	return st, nil
}

// Sync writes every field that differs between prev and next, removing the
// key when the field is empty. Errors are logged and the remaining fields are
// still attempted.
func (m *Mirror) Sync(prev, next State) {
	if prev.Token != next.Token {
		m.put(utils.StorageKeyToken, next.Token)
	}
	if prev.Role != next.Role {
		m.put(utils.StorageKeyRole, next.Role.String())
	}
	if !sameUser(prev.User, next.User) {
		if next.User == nil {
			m.put(utils.StorageKeyUser, "")
		} else if raw, err := json.Marshal(next.User); err != nil {
			m.logger.Error("Failed to encode user for storage", zap.Error(err))
		} else {
			m.put(utils.StorageKeyUser, string(raw))
		}
	}
}

// Clear removes every session key.
func (m *Mirror) Clear() {
	for _, key := range []string{utils.StorageKeyToken, utils.StorageKeyRole, utils.StorageKeyUser} {
		m.put(key, "")
	}
}

func (m *Mirror) put(key, value string) {
	var err error
	if value == "" {
		err = m.storage.RemoveItem(key)
	} else {
		err = m.storage.SetItem(key, value)
	}
	if err != nil {
		m.logger.Error("Failed to sync session field", zap.String("key", key), zap.Error(err))
	}
}

func sameUser(a, b models.UserProfile) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	return errA == nil && errB == nil && string(ra) == string(rb)
}

// StorageTokenSource reads the bearer token straight from durable storage on
// every call. It serves services used without a session store.
type StorageTokenSource struct {
	Storage storage.Storage
}

func (s StorageTokenSource) Token() string {
	token, _, err := s.Storage.GetItem(utils.StorageKeyToken)
	if err != nil {
		return ""
	}
	return token
}
