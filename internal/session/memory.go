package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore é a alternativa sem Redis, usada nos testes e em
// desenvolvimento local. Sessões expiradas são removidas na leitura.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(ses.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return ses.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
