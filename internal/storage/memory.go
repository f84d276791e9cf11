package storage

import (
	"context"
	"sync"
	"time"

	"github.com/khayt/stylist-bot/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*models.Session
	messages map[int64][]*models.Message
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[int64]*models.Session),
		messages: make(map[int64][]*models.Message),
	}
}

func (s *MemoryStorage) GetSession(_ context.Context, userID int64) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if session, exists := s.sessions[userID]; exists {
		copied := *session
		return &copied, nil
	}
	return &models.Session{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}, nil
}

func (s *MemoryStorage) SaveSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	copied.UpdatedAt = time.Now()
	s.sessions[session.UserID] = &copied
	return nil
}

func (s *MemoryStorage) ResetSession(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}

func (s *MemoryStorage) AppendMessage(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *msg
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.messages[msg.UserID] = append(s.messages[msg.UserID], &copied)
	return nil
}

// RecentMessages returns up to limit messages, newest first.
func (s *MemoryStorage) RecentMessages(_ context.Context, userID int64, limit int) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.messages[userID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	out := make([]*models.Message, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		copied := *all[i]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
