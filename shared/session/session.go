package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the gin context key the session middleware stores the
// current *Session under.
const ContextKey = "session"

// Flash kinds understood by the view layer.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Session is one browser session: the signed-in user id plus pending
// flash messages. Safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	id        string
	userID    int64
	flashes   []Flash
	expiresAt time.Time
}

// ID returns the opaque session identifier carried by the cookie.
func (s *Session) ID() string {
	return s.id
}

// UserID returns the signed-in user id, or 0 when anonymous.
func (s *Session) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// SetUser binds a user id to the session.
func (s *Session) SetUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

// ClearUser signs the session out without discarding pending flashes.
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = 0
}

// SetFlash queues a one-time message for the next rendered page.
func (s *Session) SetFlash(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns the queued messages and clears them.
func (s *Session) PopFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

// Config holds session store configuration.
type Config struct {
	CookieName string
	TTL        time.Duration
}

// Store keeps sessions in memory, keyed by the cookie value. Entries
// expire TTL after their last use.
type Store struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	cookieName string
	ttl        time.Duration
}

// NewStore creates a session store.
func NewStore(cfg *Config) *Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	name := cfg.CookieName
	if name == "" {
		name = "workopia_session"
	}

	return &Store{
		sessions:   make(map[string]*Session),
		cookieName: name,
		ttl:        ttl,
	}
}

// CookieName returns the cookie the store reads its session id from.
func (st *Store) CookieName() string {
	return st.cookieName
}

// TTL returns the session lifetime.
func (st *Store) TTL() time.Duration {
	return st.ttl
}

// New creates and registers a fresh session.
func (st *Store) New() *Session {
	s := &Session{
		id:        uuid.New().String(),
		expiresAt: time.Now().Add(st.ttl),
	}

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()

	return s
}

// Get looks up a live session by id, sliding its expiry. Expired
// sessions are dropped on access.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, false
	}

	s.mu.Lock()
	if time.Now().After(s.expiresAt) {
		s.mu.Unlock()
		st.Destroy(id)
		return nil, false
	}
	s.expiresAt = time.Now().Add(st.ttl)
	s.mu.Unlock()

	return s, true
}

// Destroy removes a session from the store.
func (st *Store) Destroy(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
