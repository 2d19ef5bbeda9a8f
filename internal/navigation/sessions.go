package navigation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one visitor's navigation state
type Session struct {
	ID       string
	Switcher *Switcher
	Viewport *Viewport

	lastSeen time.Time
}

// Sessions keeps per-visitor switchers in memory
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*Session
	now  func() time.Time
}

// NewSessions creates an empty session store
func NewSessions() *Sessions {
	return &Sessions{
		byID: make(map[string]*Session),
		now:  time.Now,
	}
}

// Create starts a new session on the home page
func (s *Sessions) Create() *Session {
	vp := &Viewport{}
	sess := &Session{
		ID:       uuid.NewString(),
		Switcher: NewSwitcher(vp),
		Viewport: vp,
	}

	s.mu.Lock()
	sess.lastSeen = s.now()
	s.byID[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session with id and marks it as seen
func (s *Sessions) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

// Len returns the number of live sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went
func (s *Sessions) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, sess := range s.byID {
		if sess.lastSeen.Before(cutoff) {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (s *Sessions) Run(ctx context.Context, every, maxIdle time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				logger.Debug("swept idle sessions", "removed", n, "remaining", s.Len())
			}
		}
	}
}
