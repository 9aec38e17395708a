package session

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrInvalidSession = errors.New("session id is empty")

// Store is the log contract used by the orchestrator. Appends must be
// atomic: a reader never observes a partially written message.
type Store interface {
	Append(ctx context.Context, sessionID string, msg Message) error
	Messages(ctx context.Context, sessionID string) ([]Message, error)
}

// MemoryStore keeps session logs in process memory. It is the only shared
// mutable resource in the engine; all mutation is append-only under the
// lock, so readers get a consistent snapshot and the log length is
// monotonically non-decreasing for any fixed session.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Append records msg at the end of the session log, creating the session
// on first use.
func (s *MemoryStore) Append(_ context.Context, sessionID string, msg Message) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &Session{SessionID: sessionID}
		s.sessions[sessionID] = sess
	}
	sess.Messages = append(sess.Messages, msg)
	return nil
}

// Messages returns a copy of the session log in insertion order. An
// unknown session id yields an empty log, matching lazy creation.
func (s *MemoryStore) Messages(_ context.Context, sessionID string) ([]Message, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out, nil
}
