package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anup/resultportal/internal/pkg/apperrors"
)

// MemoryStore is an in-process session store guarded by a mutex.
// Suitable for development and tests; sessions do not survive restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a memory-backed session store. A non-positive
// ttl means sessions never expire.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new session for the principal.
func (s *MemoryStore) Create(_ context.Context, principal Principal) (*Session, error) {
	now := s.now()
	sess := &Session{
		Token:     uuid.NewString(),
		Principal: principal,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get resolves a token to its session. Expired sessions are dropped.
func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, apperrors.ErrSessionExpired
	}

	copied := *sess
	return &copied, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// DeleteByAccount revokes all sessions held by an account.
func (s *MemoryStore) DeleteByAccount(_ context.Context, accountID int64) error {
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.Principal.AccountID == accountID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}
