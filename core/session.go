package core

import (
	"sync"
	"time"
)

// Session is a conversational container tracking an ordered, append-only
// sequence of turns for one user conversation. It is safe for concurrent
// access, although a single conversation is processed strictly sequentially.
//
// Contract:
//   - Append updates the Updated timestamp
//   - Turns returns a defensive copy to avoid external mutation
//   - Replace swaps the whole turn sequence (used when loading a persisted
//     summary at session start)
//   - Clone performs a deep copy for safe divergence.
type Session struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	mu    sync.RWMutex
	turns []Turn
}

// NewSession creates a new session with the given ID. An empty ID is replaced
// with a freshly generated one.
func NewSession(id string) *Session {
	if id == "" {
		id = NewID()
	}
	now := time.Now()
	return &Session{ID: id, Created: now, Updated: now}
}

// Append adds turns to the history updating the Updated timestamp.
func (s *Session) Append(turns ...Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turns...)
	s.Updated = time.Now()
}

// Turns returns a defensive copy of the full turn sequence.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// Len reports the number of turns in the session.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Replace swaps the session's turn sequence for the provided one. Used to
// rehydrate a session from a durable summary.
func (s *Session) Replace(turns []Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = make([]Turn, len(turns))
	copy(s.turns, turns)
	s.Updated = time.Now()
}

// Reset drops all turns. Used by operator-triggered memory clears.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.Updated = time.Now()
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{ID: s.ID, Created: s.Created, Updated: s.Updated, turns: make([]Turn, len(s.turns))}
	copy(clone.turns, s.turns)
	return clone
}
