package session

import (
	"sync"
	"time"

	"antique-assistant/internal/model"
)

// Session is the per-user conversation state.
type Session struct {
	UserID       string
	History      []model.ConversationTurn
	CreatedAt    time.Time
	LastActivity time.Time
}

// Store keeps per-user sessions in memory. All mutations run under one
// store-wide mutex, so a user/assistant pair is always appended without a
// concurrent append or eviction observing the half-written state.
type Store struct {
	mu       sync.RWMutex
	maxTurns int
	sessions map[string]*Session
	now      func() time.Time
}

// New creates an empty store keeping at most maxTurns turns per session.
func New(maxTurns int) *Store {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Store{
		maxTurns: maxTurns,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// GetOrCreate returns a snapshot of the session for userID, creating it with
// empty history on first use. The returned value owns its history slice, so
// callers can read it without holding the store lock.
func (s *Store) GetOrCreate(userID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		now := s.now()
		sess = &Session{
			UserID:       userID,
			CreatedAt:    now,
			LastActivity: now,
		}
		s.sessions[userID] = sess
	}
	return s.snapshot(sess)
}

// AppendTurn appends one turn to the user's session, bumps LastActivity and
// trims history to the most recent maxTurns entries.
func (s *Store) AppendTurn(userID string, role model.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(userID, model.ConversationTurn{Role: role, Content: content})
}

// AppendExchange appends the user message and the assistant reply as one
// atomic operation. Concurrent callers for the same user can never leave an
// unpaired tail in the history.
func (s *Store) AppendExchange(userID, userMsg, assistantMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(userID, model.ConversationTurn{Role: model.RoleUser, Content: userMsg})
	s.appendLocked(userID, model.ConversationTurn{Role: model.RoleAssistant, Content: assistantMsg})
}

// EvictIdle removes every session whose last activity is older than
// now-threshold and returns the number removed.
func (s *Store) EvictIdle(threshold time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-threshold)
	removed := 0
	for userID, sess := range s.sessions {
		if sess.LastActivity.Before(cutoff) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

// Size reports the number of live sessions.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CountActiveSince reports how many sessions saw activity within the window.
func (s *Store) CountActiveSince(window time.Duration) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-window)
	active := 0
	for _, sess := range s.sessions {
		if !sess.LastActivity.Before(cutoff) {
			active++
		}
	}
	return active
}

func (s *Store) appendLocked(userID string, turn model.ConversationTurn) {
	sess, ok := s.sessions[userID]
	if !ok {
		now := s.now()
		sess = &Session{
			UserID:       userID,
			CreatedAt:    now,
			LastActivity: now,
		}
		s.sessions[userID] = sess
	}

	sess.History = append(sess.History, turn)
	if len(sess.History) > s.maxTurns {
		sess.History = sess.History[len(sess.History)-s.maxTurns:]
	}
	sess.LastActivity = s.now()
}

func (s *Store) snapshot(sess *Session) Session {
	out := *sess
	out.History = make([]model.ConversationTurn, len(sess.History))
	copy(out.History, sess.History)
	return out
}
