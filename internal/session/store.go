package session

import (
	"sync"

	"quizforge/internal/domain"
	"quizforge/internal/engine"
)

// Session is one author's in-progress conversation: where they are in the
// authoring loop and what they have built so far. The draft is nil until the
// engine initializes it on the first start.
type Session struct {
	ID    string
	State engine.State
	Draft *domain.Draft
}

// Store maps session identities to live sessions. Insertion, lookup and
// removal are safe for concurrent use; a session's own fields are written
// only by the engine acting on behalf of that one identity, whose events are
// processed strictly one at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it at StateIdle with no
// draft on first contact.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &Session{ID: id, State: engine.StateIdle}
	s.sessions[id] = sess
	return sess
}

// Get returns the session for id or a SESSION_NOT_FOUND error.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return sess, nil
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
