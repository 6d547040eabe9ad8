package agent

import (
	"context"
	"encoding/json"
	"sync"

	"cinequest/models"
)

// InMemorySessionStore mirrors the Redis store's marshal-on-write
// semantics so callers never share live pointers with the store. Used in
// tests and in redis-less development mode.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string][]byte)}
}

func (s *InMemorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *InMemorySessionStore) Save(_ context.Context, sess *models.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[sess.ID] = b
	s.mu.Unlock()
	return nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
