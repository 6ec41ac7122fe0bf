package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used by tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession // token -> session
	byUser   map[int64]string         // userID -> token
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		byUser:   make(map[int64]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID int64, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.byUser[userID]; ok {
		delete(s.sessions, old)
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	s.byUser[userID] = token
	return token, nil
}

func (s *MemoryStore) UserID(_ context.Context, token string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		return 0, false, nil
	}
	return sess.userID, true, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		delete(s.byUser, sess.userID)
		delete(s.sessions, token)
	}
	return nil
}

func (s *MemoryStore) DestroyUser(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.byUser[userID]; ok {
		delete(s.sessions, token)
		delete(s.byUser, userID)
	}
	return nil
}

// MemoryFlashStore is the in-process FlashStore used by tests.
type MemoryFlashStore struct {
	mu      sync.Mutex
	flashes map[string][]Flash
}

func NewMemoryFlashStore() *MemoryFlashStore {
	return &MemoryFlashStore{flashes: make(map[string][]Flash)}
}

func (s *MemoryFlashStore) Push(_ context.Context, id string, f Flash) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[id] = append(s.flashes[id], f)
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, id string) ([]Flash, error) {
	if id == "" {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes := s.flashes[id]
	delete(s.flashes, id)
	return flashes, nil
}
