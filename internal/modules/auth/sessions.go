package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"placementhub/internal/domain"
)

// Session is the server-held proof of a successful login. The caller only
// ever sees the opaque token.
type Session struct {
	Token     string          `json:"-"`
	UserID    int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"-"`
}

// SessionManager keeps sessions in an in-process map guarded by a mutex.
// Sessions do not survive a restart. The manager is injected into handlers
// and middleware rather than read from package-level state.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a new session for the user and returns its opaque token.
func (m *SessionManager) Create(user *domain.User) (Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	return sess, nil
}

// Get returns the session for a token, or false if the token is unknown or
// expired. Expired entries are removed on lookup.
func (m *SessionManager) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if !sess.ExpiresAt.After(m.now()) {
		m.Destroy(token)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes a session. Destroying an absent session is not an error.
func (m *SessionManager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// PurgeExpired sweeps out expired sessions and reports how many were removed.
func (m *SessionManager) PurgeExpired() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, sess := range m.sessions {
		if !sess.ExpiresAt.After(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

func (m *SessionManager) TTL() time.Duration { return m.ttl }

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
