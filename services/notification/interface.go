package notification

import (
	"sync"
	"time"

	"medicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier shows transient success and error messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// DefaultNotificationService logs every notification and keeps the most
// recent ones in a bounded feed the console can display.
type DefaultNotificationService struct {
	logger *zap.Logger
	limit  int

	mu   sync.Mutex
	feed []models.Notification
	now  func() time.Time
}

// DefaultFeedLimit bounds the in-memory feed when no limit is given.
const DefaultFeedLimit = 50

func NewNotificationService(logger *zap.Logger, limit int) *DefaultNotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return &DefaultNotificationService{logger: logger, limit: limit, now: time.Now}
}

var _ Notifier = (*DefaultNotificationService)(nil)

func (s *DefaultNotificationService) Success(message string) {
	s.logger.Info("notification", zap.String("level", models.LevelSuccess), zap.String("message", message))
	s.push(models.LevelSuccess, message)
}

func (s *DefaultNotificationService) Error(message string) {
	s.logger.Warn("notification", zap.String("level", models.LevelError), zap.String("message", message))
	s.push(models.LevelError, message)
}

func (s *DefaultNotificationService) push(level, message string) {
	n := models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: s.now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = append(s.feed, n)
	if over := len(s.feed) - s.limit; over > 0 {
		s.feed = append([]models.Notification(nil), s.feed[over:]...)
	}
}

// Recent returns the feed, oldest first.
func (s *DefaultNotificationService) Recent() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

// Drain returns the feed and empties it.
func (s *DefaultNotificationService) Drain() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.feed
	s.feed = nil
	return out
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
