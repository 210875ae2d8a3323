package session

import (
	"context"
	"sync"

	"github.com/talentgraph/talentgraph/core"
)

// InMemoryStore is a volatile SummaryStore implementation keeping summaries
// in a process local map. It is safe for concurrent access and best suited
// for tests or single-run conversations where context need not survive a
// restart. Stored and returned slices are copied to prevent external
// mutation of internal state.
type InMemoryStore struct {
	mu        sync.RWMutex
	summaries map[string][]core.Turn
}

var _ core.SummaryStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory summary store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{summaries: make(map[string][]core.Turn)}
}

// Load returns the persisted summary for the session, or (nil, nil) when
// none exists.
func (s *InMemoryStore) Load(_ context.Context, sessionID string) ([]core.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns, ok := s.summaries[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Save upserts the summary for the session. Idempotent; last writer wins.
func (s *InMemoryStore) Save(_ context.Context, sessionID string, turns []core.Turn) error {
	cp := make([]core.Turn, len(turns))
	copy(cp, turns)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[sessionID] = cp
	return nil
}

// Clear removes the summary for the session.
func (s *InMemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, sessionID)
	return nil
}
