// Package sessions tracks players connected to the SSH server.
package sessions

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrFull is returned when the registry is at its session limit.
var ErrFull = errors.New("sessions: server is full")

// ID uniquely identifies a connected player.
type ID string

// NewID returns a random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Session is one connected player. The done channel closes when the server
// asks the session to end.
type Session struct {
	id      ID
	user    string
	remote  string
	started time.Time

	mu    sync.Mutex
	level string

	done     chan struct{}
	doneOnce sync.Once
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// SetLevel records the level the player is on.
func (s *Session) SetLevel(level string) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

// Done returns a channel that closes when the session should end.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as done.
// Safe to call multiple times.
func (s *Session) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Info is a point-in-time view of a session.
type Info struct {
	ID      ID
	User    string
	Remote  string
	Started time.Time
	Level   string
}

func (s *Session) info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{ID: s.id, User: s.user, Remote: s.remote, Started: s.started, Level: s.level}
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Session
	max      int
	now      func() time.Time
}

// NewRegistry creates a registry holding at most max sessions (0 = no limit).
func NewRegistry(max int) *Registry {
	return &Registry{
		sessions: make(map[ID]*Session),
		max:      max,
		now:      time.Now,
	}
}

// Open registers a new session for user connecting from remote.
func (r *Registry) Open(user, remote string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.max > 0 && len(r.sessions) >= r.max {
		return nil, ErrFull
	}

	s := &Session{
		id:      NewID(),
		user:    user,
		remote:  remote,
		started: r.now(),
		done:    make(chan struct{}),
	}
	r.sessions[s.id] = s
	return s, nil
}

// Unregister removes a session from the registry and closes it.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns a snapshot of all sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	out := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.info())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// CloseAll signals every session to end. Sessions stay registered until
// they unregister themselves.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		s.Close()
	}
}
