package session

import (
	"context"
	"fmt"
	"sync"

	"medicare/models"
	"medicare/services/auth"
	"medicare/services/notification"
	"medicare/storage"

	"go.uber.org/zap"
)

// Config wires a Store.
type Config struct {
	Auth     auth.AuthService
	Storage  storage.Storage
	Notifier notification.Notifier
	Logger   *zap.Logger
}

// Store is the single owner of session state and of its durable copy. It
// implements httpclient.TokenSource.
type Store struct {
	auth     auth.AuthService
	notifier notification.Notifier
	logger   *zap.Logger
	mirror   *Mirror

	mu        sync.Mutex
	state     State
	listeners map[int]func(prev, next State)
	nextID    int
}

// New rehydrates the session from storage and starts mirroring every change
// back to it.
func New(cfg Config) (*Store, error) {
	if cfg.Auth == nil || cfg.Storage == nil {
		return nil, fmt.Errorf("session store initialization error: auth service or storage is nil")
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notification.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	mirror := NewMirror(cfg.Storage, cfg.Logger)
	initial, err := mirror.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate session: %w", err)
	}

	s := &Store{
		auth:      cfg.Auth,
		notifier:  cfg.Notifier,
		logger:    cfg.Logger,
		mirror:    mirror,
		state:     initial,
		listeners: make(map[int]func(prev, next State)),
	}
	s.Subscribe(mirror.Sync)
	return s, nil
}

// Dispatch applies a and runs subscribers before returning, so durable
// storage reflects the transition once Dispatch is done.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(a)
}

// apply runs a transition; s.mu must be held.
func (s *Store) apply(a Action) {
	prev := s.state
	s.state = Reduce(prev, a)
	for _, fn := range s.listeners {
		fn(prev, s.state)
	}
}

// Subscribe registers fn for every transition. fn runs under the store lock
// and must not call back into the store.
func (s *Store) Subscribe(fn func(prev, next State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close stops mirroring and drops every subscriber.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = make(map[int]func(prev, next State))
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.User = s.state.User.Clone()
	return out
}

func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().Authenticated()
}

// Token returns the current bearer token.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Login authenticates and, on success, stores user, role and token together.
// Any failure, including an incomplete success response, leaves the session
// anonymous with the error recorded.
func (s *Store) Login(ctx context.Context, creds models.Credentials) models.Result[models.UserProfile] {
	s.Dispatch(Action{Type: LoginStart})

	res := s.auth.Login(ctx, creds)
	if !res.Success {
		return s.loginFailed(res.MessageOr("Login failed. Please check your credentials."), res.Status)
	}

	role, err := models.ParseRole(res.Data.Role)
	if err != nil || role == "" || res.Data.Token == "" || res.Data.User == nil {
		s.logger.Warn("Incomplete login response",
			zap.Bool("token", res.Data.Token != ""),
			zap.String("role", res.Data.Role),
			zap.Bool("user", res.Data.User != nil))
		return s.loginFailed("Invalid login response from server", res.Status)
	}

	s.Dispatch(Action{Type: LoginSuccess, User: res.Data.User, Role: role, Token: res.Data.Token})
	s.notifier.Success(res.MessageOr("Login successful!"))
	s.logger.Info("User logged in", zap.String("userID", res.Data.User.ID()), zap.String("role", role.String()))
	return models.Ok(res.Data.User.Clone(), res.Message)
}

func (s *Store) loginFailed(message string, status int) models.Result[models.UserProfile] {
	s.Dispatch(Action{Type: LoginFailure, Message: message})
	s.notifier.Error(message)
	return models.Fail[models.UserProfile](message, status)
}

// Register creates an account without logging in.
func (s *Store) Register(ctx context.Context, data models.RegistrationData) models.Result[models.UserProfile] {
	s.Dispatch(Action{Type: RegisterStart})

	res := s.auth.Register(ctx, data)
	if !res.Success {
		msg := res.MessageOr("Registration failed")
		s.Dispatch(Action{Type: RegisterFailure, Message: msg})
		s.notifier.Error(msg)
		res.Message = msg
		return res
	}

	s.Dispatch(Action{Type: RegisterSuccess})
	s.notifier.Success("Registration successful! Please login.")
	return res
}

// Logout clears durable storage and resets the session. Calling it while
// anonymous changes nothing but still clears storage.
func (s *Store) Logout(ctx context.Context) {
	s.auth.Logout(ctx)
	s.mu.Lock()
	s.mirror.Clear()
	s.mu.Unlock()
	wasAuthenticated := s.IsAuthenticated()
	s.Dispatch(Action{Type: Logout})
	if wasAuthenticated {
		s.notifier.Success("Logged out successfully")
	}
}

// UpdateUser replaces the profile of the logged-in user. It is ignored while
// anonymous.
func (s *Store) UpdateUser(user models.UserProfile) {
	s.Dispatch(Action{Type: UpdateUser, User: user})
}

func (s *Store) ClearError() {
	s.Dispatch(Action{Type: ClearError})
}

// Expire ends the session after the backend rejected token. A rejection of
// a token other than the current one, such as a slow reply to a request made
// before a new login, leaves the session alone.
func (s *Store) Expire(token, message string) {
	if message == "" {
		message = "Your session has expired. Please log in again."
	}
	s.mu.Lock()
	current := s.state.Authenticated() && s.state.Token == token
	if current {
		s.apply(Action{Type: SessionExpired, Message: message})
	}
	s.mu.Unlock()
	if !current {
		s.logger.Debug("Ignoring rejection of a stale token")
		return
	}
	s.notifier.Error(message)
	s.logger.Info("Session expired", zap.String("reason", message))
}
