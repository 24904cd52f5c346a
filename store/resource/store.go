package resource

import (
	"context"
	"sync"

	"medicare/models"
	"medicare/services/notification"

	"go.uber.org/zap"
)

// Messages are the notification fallbacks used when the backend sends no
// message. Failure messages also become the store error.
type Messages struct {
	FetchFailed  string
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// Config wires a Store.
type Config struct {
	Name     string
	Behavior Behavior
	Messages Messages
	Notifier notification.Notifier
	Logger   *zap.Logger
}

// Store is a reducer-backed cache for one collection. Service calls run
// outside the lock, so concurrent operations interleave; list transforms key
// by id and are safe to apply in any order.
type Store[T Identifiable] struct {
	cfg Config

	mu        sync.Mutex
	state     State[T]
	listeners map[int]func(State[T])
	nextID    int
}

func New[T Identifiable](cfg Config) *Store[T] {
	if cfg.Notifier == nil {
		cfg.Notifier = notification.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Store[T]{
		cfg:       cfg,
		state:     State[T]{Items: []T{}},
		listeners: make(map[int]func(State[T])),
	}
}

// Dispatch applies a and notifies subscribers with the new state.
func (s *Store[T]) Dispatch(a Action[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.cfg.Behavior, s.state, a)
	for _, fn := range s.listeners {
		fn(s.state)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Items = append(make([]T, 0, len(s.state.Items)), s.state.Items...)
	if s.state.Current != nil {
		out.Current = ptr(*s.state.Current)
	}
	return out
}

// Subscribe registers fn to run after every transition. fn runs under the
// store lock and must not call back into the store.
func (s *Store[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
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

// Close drops every subscriber.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = make(map[int]func(State[T]))
}

// Fetch replaces the list with the result of call. A successful call with no
// data yields an empty list. Only failures are announced.
func (s *Store[T]) Fetch(ctx context.Context, call func(context.Context) models.Result[[]T]) models.Result[[]T] {
	s.Dispatch(Action[T]{Type: Start, Op: OpFetch})
	res := call(ctx)
	if !res.Success {
		return fail(s, OpFetch, res, s.cfg.Messages.FetchFailed)
	}
	if res.Data == nil {
		res.Data = []T{}
	}
	s.Dispatch(Action[T]{Type: Success, Op: OpFetch, Items: res.Data})
	return res
}

// Create appends the created element to the end of the list.
func (s *Store[T]) Create(ctx context.Context, call func(context.Context) models.Result[T]) models.Result[T] {
	s.Dispatch(Action[T]{Type: Start, Op: OpCreate})
	res := call(ctx)
	if !res.Success {
		return fail(s, OpCreate, res, s.cfg.Messages.CreateFailed)
	}
	s.Dispatch(Action[T]{Type: Success, Op: OpCreate, Item: s.identified(OpCreate, res.Data)})
	s.cfg.Notifier.Success(res.MessageOr(s.cfg.Messages.Created))
	return res
}

// Update replaces the element whose id matches the returned element. When no
// element matches the list is left as is.
func (s *Store[T]) Update(ctx context.Context, call func(context.Context) models.Result[T]) models.Result[T] {
	s.Dispatch(Action[T]{Type: Start, Op: OpUpdate})
	res := call(ctx)
	if !res.Success {
		return fail(s, OpUpdate, res, s.cfg.Messages.UpdateFailed)
	}
	s.Dispatch(Action[T]{Type: Success, Op: OpUpdate, Item: s.identified(OpUpdate, res.Data)})
	s.cfg.Notifier.Success(res.MessageOr(s.cfg.Messages.Updated))
	return res
}

// Remove deletes id on the backend and then from the list. Existence is not
// checked locally; an unknown id fails however the backend reports it.
func (s *Store[T]) Remove(ctx context.Context, id string, call func(context.Context) models.Result[struct{}]) models.Result[struct{}] {
	s.Dispatch(Action[T]{Type: Start, Op: OpDelete})
	res := call(ctx)
	if !res.Success {
		return fail(s, OpDelete, res, s.cfg.Messages.DeleteFailed)
	}
	s.Dispatch(Action[T]{Type: Success, Op: OpDelete, ID: id})
	s.cfg.Notifier.Success(res.MessageOr(s.cfg.Messages.Deleted))
	return res
}

func (s *Store[T]) SetCurrent(item T) {
	s.Dispatch(Action[T]{Type: SetCurrent, Item: ptr(item)})
}

func (s *Store[T]) ClearCurrent() {
	s.Dispatch(Action[T]{Type: ClearCurrent})
}

func (s *Store[T]) ClearError() {
	s.Dispatch(Action[T]{Type: ClearError})
}

// identified returns item, or nil when the backend answered without an id
// so that no anonymous element enters the list.
func (s *Store[T]) identified(op Op, item T) *T {
	if item.GetID() == "" {
		s.cfg.Logger.Warn("resource response has no id; list left unchanged",
			zap.String("store", s.cfg.Name),
			zap.String("op", string(op)))
		return nil
	}
	return ptr(item)
}

// fail records a failed operation and announces it. The returned result always
// carries a message.
func fail[T Identifiable, R any](s *Store[T], op Op, res models.Result[R], fallback string) models.Result[R] {
	msg := res.MessageOr(fallback)
	s.Dispatch(Action[T]{Type: Failure, Op: op, Message: msg})
	s.cfg.Notifier.Error(msg)
	s.cfg.Logger.Debug("resource operation failed",
		zap.String("store", s.cfg.Name),
		zap.String("op", string(op)),
		zap.Int("status", res.Status),
		zap.String("message", msg))
	res.Message = msg
	return res
}
