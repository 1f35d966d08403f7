package cache

import (
	"context"
	"sync"

	"selectra/internal/model"
)

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]model.AnswerResult
}

// NewMemorySessionStore creates the default in-process session store.
// State does not survive a restart.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string][]model.AnswerResult),
	}
}

func (s *memorySessionStore) Append(_ context.Context, sessionID string, result *model.AnswerResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], *result)
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) ([]model.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.sessions[sessionID]
	results := make([]model.AnswerResult, len(stored))
	copy(results, stored)
	return results, nil
}

func (s *memorySessionStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
