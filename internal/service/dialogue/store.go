package dialogue

import (
	"sync"

	model "github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
)

// SessionStore maps user identifiers to their mutable sessions. The engine
// borrows the store per call and never retains sessions across turns.
type SessionStore interface {
	Get(userID string) (*model.Session, bool)
	Put(session *model.Session)
	Delete(userID string)
}

// MemoryStore implements SessionStore with a mutex-guarded map. Turns for
// different users may run in parallel; turns for the same user are assumed to
// arrive one at a time.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*model.Session)}
}

// Get returns the session for the user, if any.
func (s *MemoryStore) Get(userID string) (*model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// Put stores the session under its user id.
func (s *MemoryStore) Put(session *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
}

// Delete drops the user's session and everything accumulated in it.
func (s *MemoryStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
