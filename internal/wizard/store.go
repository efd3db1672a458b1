package wizard

import (
	"errors"
	"sync"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
)

var ErrSessionNotFound = errors.New("session not found")

// Store is the in-memory session registry. Sessions live only for one
// visit and are never persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

func (s *Store) Create(c catalog.Catalog) *Session {
	session := NewSession(c)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
